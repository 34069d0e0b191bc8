package record

import (
	"strings"
	"time"
)

// Record is the canonical representation of one project/event entry,
// independent of which upstream shape produced it (form response, AI-analysis
// JSON, or legacy summary JSON). A record is built in one pass and never
// mutated after it is handed to the renderer or a row projection.
type Record struct {
	// identity
	ProjectName string `json:"project_name,omitempty"`
	ClientName  string `json:"client_name,omitempty"`

	// classification
	EventType string   `json:"event_type,omitempty"`
	Tags      []string `json:"tags,omitempty"` // insertion order preserved, not de-duplicated

	// temporal (free-form on purpose: "2024/10/15", "14営業日", "夏" are all valid)
	EventDate string `json:"event_date,omitempty"`
	Deadline  string `json:"deadline,omitempty"`

	// commercial
	UnitPrice     *int   `json:"unit_price,omitempty"`
	MinPrice      *int   `json:"min_price,omitempty"`
	MaxPrice      *int   `json:"max_price,omitempty"`
	TotalCost     *int   `json:"total_cost,omitempty"`
	OrderQuantity *int   `json:"order_quantity,omitempty"`
	TargetCount   string `json:"target_count,omitempty"` // may carry qualifiers ("先着500名")

	// relationships
	PartnerCompanies  []string `json:"partner_companies,omitempty"`
	PartnerEvaluation string   `json:"partner_evaluation,omitempty"`
	NoveltyItems      []string `json:"novelty_items,omitempty"`
	Venue             string   `json:"venue,omitempty"`

	// narrative
	EventDescription string `json:"event_description,omitempty"`
	SuccessFactors   string `json:"success_factors,omitempty"`
	FailurePoints    string `json:"failure_points,omitempty"`
	Notes            string `json:"notes,omitempty"`
	DocumentURL      string `json:"document_url,omitempty"`

	// provenance
	SourceFileName  string    `json:"source_file_name,omitempty"`
	SlideCount      int       `json:"slide_count,omitempty"`
	SlideTextSample string    `json:"slide_text_sample,omitempty"`
	ProcessedAt     time.Time `json:"processed_at,omitempty"`
	RegisteredAt    time.Time `json:"registered_at,omitempty"`
	PersonInCharge  string    `json:"person_in_charge,omitempty"`
	RespondentEmail string    `json:"respondent_email,omitempty"`
	ConfidenceScore int       `json:"confidence_score"`
}

// MainCompany returns the representative partner company: always the first
// non-empty element, never any other ranking.
func (r *Record) MainCompany() string {
	return first(r.PartnerCompanies)
}

// MainNovelty returns the representative novelty item (first non-empty).
func (r *Record) MainNovelty() string {
	return first(r.NoveltyItems)
}

// AllCompanies joins every partner company with ", " for display and the
// wide row projection.
func (r *Record) AllCompanies() string {
	return strings.Join(compact(r.PartnerCompanies), ", ")
}

// TagString joins tags with ", " for the spreadsheet tag column.
func (r *Record) TagString() string {
	return strings.Join(r.Tags, ", ")
}

func first(ss []string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func compact(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
