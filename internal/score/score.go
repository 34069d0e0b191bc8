// Package score computes the heuristic 0–100 completeness score for a
// record. The score is a deterministic function of which fields are present,
// not a statistical probability, and is never hand-set.
package score

import "github.com/kshoda-lgtm/8CUBE-promotion/internal/record"

// Strategy names one of the two weighting formulas. The two are not
// interchangeable: AnalysisStrategy scores a populated record, while
// LegacyStrategy scores the raw legacy summary arrays.
type Strategy string

const (
	AnalysisStrategy Strategy = "analysis"
	LegacyStrategy   Strategy = "legacy"
)

// Analysis scores a record extracted from slide text or form input.
// Weights: client 25, prize 25, price 20, vendor 15, quantity 10, period 5.
func Analysis(r *record.Record) int {
	s := 0
	if r.ClientName != "" {
		s += 25
	}
	if r.MainNovelty() != "" {
		s += 25
	}
	if r.UnitPrice != nil {
		s += 20
	}
	if r.MainCompany() != "" {
		s += 15
	}
	if r.OrderQuantity != nil {
		s += 10
	}
	if r.EventDate != "" {
		s += 5
	}
	return clamp(s)
}

// LegacyInput is the shape the legacy formula scores: the parallel summary
// arrays plus file metadata, before normalization collapses them.
type LegacyInput struct {
	HasFileInfo  bool
	PriceCount   int
	CompanyCount int
	KeywordCount int
	SlideCount   int
}

// Legacy scores a legacy-format summary. Weights: file metadata 20, any
// price 30, any company 25, any keyword 15, slide count above 5 another 10.
func Legacy(in LegacyInput) int {
	s := 0
	if in.HasFileInfo {
		s += 20
	}
	if in.PriceCount > 0 {
		s += 30
	}
	if in.CompanyCount > 0 {
		s += 25
	}
	if in.KeywordCount > 0 {
		s += 15
	}
	if in.SlideCount > 5 {
		s += 10
	}
	return clamp(s)
}

func clamp(s int) int {
	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return s
}
