package normalize

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/score"
)

// Document is the batch JSON file format: an optional error marker, file
// metadata, and either the current AI-analysis block or the legacy parallel
// array summary.
type Document struct {
	Error            string    `json:"error,omitempty"`
	FileInfo         *FileInfo `json:"file_info,omitempty"`
	Analysis         *Analysis `json:"gemini_analysis,omitempty"`
	Summary          *Summary  `json:"summary,omitempty"`
	SlideTextsSample string    `json:"slide_texts_sample,omitempty"`
}

// FileInfo is the producer's metadata about the source deck.
type FileInfo struct {
	FileName    string `json:"file_name"`
	SlideCount  int    `json:"slide_count"`
	ProcessedAt string `json:"processed_at"`
}

// Analysis is the current-format block produced by the AI analysis step.
type Analysis struct {
	ClientName       string     `json:"client_name"`
	EventDate        string     `json:"event_date"`
	EventType        string     `json:"event_type"`
	EventDescription string     `json:"event_description"`
	UnitPrice        *int       `json:"unit_price"`
	TotalCost        *int       `json:"total_cost"`
	OrderQuantity    *int       `json:"order_quantity"`
	TargetCount      FlexString `json:"target_count"`
	Deadline         string     `json:"deadline"`
	PartnerCompanies []string   `json:"partner_companies"`
	NoveltyItems     []string   `json:"novelty_items"`
	Venue            string     `json:"venue"`
	Keywords         []string   `json:"keywords"`
	ConfidenceScore  int        `json:"confidence_score"`
}

// Summary is the legacy block: one parallel array per field across all
// slides, instead of a single structured analysis.
type Summary struct {
	AllPrices     []int    `json:"all_prices"`
	AllQuantities []int    `json:"all_quantities"`
	AllCompanies  []string `json:"all_companies"`
	AllKeywords   []string `json:"all_keywords"`
	AllDeadlines  []string `json:"all_deadlines"`
	AllDates      []string `json:"all_dates"`
	AllEventTypes []string `json:"all_event_types"`
	AllClients    []string `json:"all_clients"`
	AllNovelties  []string `json:"all_novelties"`
}

// FlexString tolerates producers that emit a number where the schema wants a
// free-form string ("先着500名" vs 500).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// FromDocument reduces a batch JSON document to the canonical record.
// Presence of the AI-analysis block selects the current shape; its absence
// falls back to the legacy shape. A document with neither yields an
// all-empty record, not an error.
func FromDocument(doc *Document) *record.Record {
	fi := doc.FileInfo
	if fi == nil {
		fi = &FileInfo{}
	}

	r := &record.Record{
		SourceFileName:  fi.FileName,
		SlideCount:      fi.SlideCount,
		ProcessedAt:     parseProcessedAt(fi.ProcessedAt),
		SlideTextSample: doc.SlideTextsSample,
	}

	if doc.Analysis != nil {
		fromAnalysis(r, doc)
	} else {
		fromSummary(r, doc)
	}
	return r
}

func fromAnalysis(r *record.Record, doc *Document) {
	g := doc.Analysis

	r.EventType = g.EventType
	r.EventDate = g.EventDate
	r.EventDescription = g.EventDescription
	r.Venue = g.Venue
	r.Deadline = g.Deadline
	r.TargetCount = string(g.TargetCount)
	r.UnitPrice = g.UnitPrice
	r.MinPrice = g.UnitPrice
	r.MaxPrice = g.UnitPrice
	r.TotalCost = g.TotalCost
	r.OrderQuantity = g.OrderQuantity
	r.PartnerCompanies = dropEmpty(g.PartnerCompanies)
	r.NoveltyItems = dropEmpty(g.NoveltyItems)
	r.Tags = dropEmpty(g.Keywords)

	r.ClientName = g.ClientName
	if r.ClientName == "" {
		r.ClientName = ClientFromFilename(r.SourceFileName)
	}

	// A pre-computed confidence from the analysis step is used verbatim;
	// the local formula is a fallback, never an override.
	if g.ConfidenceScore > 0 {
		r.ConfidenceScore = g.ConfidenceScore
	} else {
		r.ConfidenceScore = score.Legacy(legacyInput(doc))
	}
}

func fromSummary(r *record.Record, doc *Document) {
	s := doc.Summary
	if s == nil {
		s = &Summary{}
	}

	r.EventType = firstOf(s.AllEventTypes)
	r.EventDate = firstOf(s.AllDates)
	r.Deadline = firstOf(s.AllDeadlines)
	r.PartnerCompanies = dropEmpty(s.AllCompanies)
	r.NoveltyItems = dropEmpty(s.AllNovelties)
	r.Tags = dropEmpty(s.AllKeywords)

	r.UnitPrice = meanOf(s.AllPrices)
	r.MinPrice = minOf(s.AllPrices)
	r.MaxPrice = maxOf(s.AllPrices)
	r.OrderQuantity = sumOf(s.AllQuantities)

	r.ClientName = firstOf(dropEmpty(s.AllClients))
	if r.ClientName == "" {
		r.ClientName = ClientFromFilename(r.SourceFileName)
	}

	r.ConfidenceScore = score.Legacy(legacyInput(doc))
}

func legacyInput(doc *Document) score.LegacyInput {
	in := score.LegacyInput{HasFileInfo: doc.FileInfo != nil}
	if doc.FileInfo != nil {
		in.SlideCount = doc.FileInfo.SlideCount
	}
	if doc.Summary != nil {
		in.PriceCount = len(doc.Summary.AllPrices)
		in.CompanyCount = len(doc.Summary.AllCompanies)
		in.KeywordCount = len(doc.Summary.AllKeywords)
	}
	return in
}

var (
	fullWidthClient = regexp.MustCompile(`【([^】]+?)様?】`)
	asciiClient     = regexp.MustCompile(`\[([^\]]+?)様?\]`)
)

// ClientFromFilename derives a client name from the source file name using
// the two bracket conventions, full-width first. No match leaves the client
// empty.
func ClientFromFilename(filename string) string {
	if m := fullWidthClient.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	if m := asciiClient.FindStringSubmatch(filename); m != nil {
		return m[1]
	}
	return ""
}

func parseProcessedAt(s string) time.Time {
	if s == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}

func firstOf(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

func dropEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// meanOf is the arithmetic mean rounded to the nearest integer, nil for an
// empty slice.
func meanOf(ns []int) *int {
	if len(ns) == 0 {
		return nil
	}
	sum := 0
	for _, n := range ns {
		sum += n
	}
	v := int(math.Round(float64(sum) / float64(len(ns))))
	return &v
}

func sumOf(ns []int) *int {
	if len(ns) == 0 {
		return nil
	}
	sum := 0
	for _, n := range ns {
		sum += n
	}
	return &sum
}

func minOf(ns []int) *int {
	if len(ns) == 0 {
		return nil
	}
	v := ns[0]
	for _, n := range ns[1:] {
		if n < v {
			v = n
		}
	}
	return &v
}

func maxOf(ns []int) *int {
	if len(ns) == 0 {
		return nil
	}
	v := ns[0]
	for _, n := range ns[1:] {
		if n > v {
			v = n
		}
	}
	return &v
}
