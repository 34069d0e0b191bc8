package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
)

func intp(n int) *int { return &n }

func TestAnalysisWeights(t *testing.T) {
	full := &record.Record{
		ClientName:       "広研",
		NoveltyItems:     []string{"エコバッグ"},
		UnitPrice:        intp(500),
		PartnerCompanies: []string{"大阪印刷株式会社"},
		OrderQuantity:    intp(1000),
		EventDate:        "2024年7月",
	}
	assert.Equal(t, 100, Analysis(full))

	assert.Equal(t, 0, Analysis(&record.Record{}))
	assert.Equal(t, 25, Analysis(&record.Record{ClientName: "広研"}))
	assert.Equal(t, 25, Analysis(&record.Record{NoveltyItems: []string{"タンブラー"}}))
	assert.Equal(t, 20, Analysis(&record.Record{UnitPrice: intp(0)}))
	assert.Equal(t, 15, Analysis(&record.Record{PartnerCompanies: []string{"印刷所"}}))
	assert.Equal(t, 10, Analysis(&record.Record{OrderQuantity: intp(100)}))
	assert.Equal(t, 5, Analysis(&record.Record{EventDate: "夏"}))
}

func TestAnalysisIgnoresBlankListEntries(t *testing.T) {
	r := &record.Record{
		NoveltyItems:     []string{"", "  "},
		PartnerCompanies: []string{""},
	}
	assert.Equal(t, 0, Analysis(r))
}

func TestAnalysisIsMonotonic(t *testing.T) {
	less := &record.Record{ClientName: "広研"}
	more := &record.Record{ClientName: "広研", UnitPrice: intp(500)}
	assert.Less(t, Analysis(less), Analysis(more))
}

func TestLegacyWeights(t *testing.T) {
	tests := []struct {
		name string
		in   LegacyInput
		want int
	}{
		{"empty", LegacyInput{}, 0},
		{"file info only", LegacyInput{HasFileInfo: true}, 20},
		{"prices only", LegacyInput{PriceCount: 3}, 30},
		{"companies only", LegacyInput{CompanyCount: 1}, 25},
		{"keywords only", LegacyInput{KeywordCount: 2}, 15},
		{"small deck no bonus", LegacyInput{SlideCount: 5}, 0},
		{"large deck bonus", LegacyInput{SlideCount: 6}, 10},
		{"everything", LegacyInput{
			HasFileInfo: true, PriceCount: 1, CompanyCount: 1,
			KeywordCount: 1, SlideCount: 10,
		}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Legacy(tt.in))
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	in := LegacyInput{HasFileInfo: true, PriceCount: 100, CompanyCount: 100, KeywordCount: 100, SlideCount: 100}
	s := Legacy(in)
	assert.GreaterOrEqual(t, s, 0)
	assert.LessOrEqual(t, s, 100)
}
