// Package tags derives categorical tags from raw text and already-extracted
// fields. Rules fire independently; output is append-only and deliberately
// not de-duplicated.
package tags

import "strings"

// keywordGroup fires one tag when any trigger substring is present.
type keywordGroup struct {
	Tag      string
	Triggers []string
}

// Seasonal keyword groups.
var seasons = []keywordGroup{
	{"春季", []string{"春", "桜", "新年度"}},
	{"夏季", []string{"夏", "海", "プール", "暑中"}},
	{"秋季", []string{"秋", "紅葉", "ハロウィン"}},
	{"冬季", []string{"冬", "クリスマス", "年末", "正月"}},
}

// Attribute keyword groups.
var attributes = []keywordGroup{
	{"エコ", []string{"エコ", "環境", "SDGs", "サステナブル"}},
	{"高級", []string{"高級", "プレミアム", "限定", "特別"}},
	{"オリジナル", []string{"オリジナル", "カスタム", "名入れ", "特注"}},
	{"大量発注", []string{"大量", "1000個", "2000個", "5000個"}},
}

// Generate returns tags for the given text and unit price. Price tiers are
// mutually exclusive (at most one fires); seasonal and attribute groups may
// all fire. The caller appends these to whatever tags the record already has.
func Generate(rawText string, unitPrice *int) []string {
	var out []string

	for _, g := range seasons {
		if g.matches(rawText) {
			out = append(out, g.Tag)
		}
	}

	if unitPrice != nil {
		switch p := *unitPrice; {
		case p < 100:
			out = append(out, "低価格帯")
		case p < 500:
			out = append(out, "中価格帯")
		case p < 1000:
			out = append(out, "高価格帯")
		default:
			out = append(out, "プレミアム")
		}
	}

	for _, g := range attributes {
		if g.matches(rawText) {
			out = append(out, g.Tag)
		}
	}

	return out
}

func (g keywordGroup) matches(text string) bool {
	for _, t := range g.Triggers {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}
