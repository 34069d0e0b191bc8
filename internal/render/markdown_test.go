package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
)

func intp(n int) *int { return &n }

func jst(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, record.JST)
}

func TestMarkdownFullRecord(t *testing.T) {
	r := &record.Record{
		ProjectName:       "夏祭りノベルティ企画",
		ClientName:        "広研",
		EventType:         "夏祭り",
		EventDate:         "2024年7月",
		Venue:             "大阪城公園",
		TargetCount:       "先着500名",
		EventDescription:  "地域の夏祭りでうちわを配布する。",
		UnitPrice:         intp(1500),
		TotalCost:         intp(3000000),
		OrderQuantity:     intp(2000),
		Deadline:          "14営業日",
		PartnerCompanies:  []string{"大阪印刷株式会社"},
		PartnerEvaluation: "納期厳守、品質良好",
		NoveltyItems:      []string{"うちわ", "タオル"},
		SuccessFactors:    "早期発注で単価を抑えられた。",
		FailurePoints:     "在庫がやや余った。",
		Tags:              []string{"夏季", "低価格帯"},
		DocumentURL:       "https://example.com/doc",
		Notes:             "次回は数量を見直す。",
		PersonInCharge:    "田中",
		RegisteredAt:      jst(2024, time.July, 1, 10, 30),
	}

	doc := Markdown(r)

	assert.True(t, strings.HasPrefix(doc, "# 夏祭りノベルティ企画\n"))
	assert.Contains(t, doc, "**登録日時**: 2024-07-01 10:30:00")
	assert.Contains(t, doc, "**担当者**: 田中")
	assert.Contains(t, doc, "**データソース**: Google Form（手入力）")

	// section order is fixed
	order := []string{
		"## 📋 基本情報", "## 📝 イベント内容", "## 💰 価格情報", "## ⏰ 納期",
		"## 🤝 協力会社", "## 🎁 ノベルティ/景品", "## ✅ 成功要因",
		"## ⚠️ 反省点", "## 🏷️ タグ・キーワード", "## 📎 参考資料", "## 📌 備考",
	}
	last := -1
	for _, h := range order {
		i := strings.Index(doc, h)
		assert.Greater(t, i, last, h)
		last = i
	}

	assert.Contains(t, doc, "- **単価**: ¥1,500")
	assert.Contains(t, doc, "- **総費用**: ¥3,000,000")
	assert.Contains(t, doc, "- **発注数量**: 2,000個")
	assert.Contains(t, doc, "**評価**: 納期厳守、品質良好")
	assert.Contains(t, doc, "`#夏季` `#低価格帯`")
	assert.Contains(t, doc, "[企画書・資料リンク](https://example.com/doc)")
	assert.True(t, strings.HasSuffix(doc, "*登録者: 田中 | 登録日: 2024-07-01 10:30:00*"))
}

func TestMarkdownEmptyRecordStillTitledWithFooter(t *testing.T) {
	doc := Markdown(&record.Record{})

	assert.True(t, strings.HasPrefix(doc, "# 【不明様】案件\n"))
	assert.Contains(t, doc, "**担当者**: 不明")
	assert.NotContains(t, doc, "## 💰 価格情報")
	assert.NotContains(t, doc, "## 📋 基本情報")
	assert.Contains(t, doc, "*登録者:  | 登録日: *")
}

func TestMarkdownDataSourceFromSlides(t *testing.T) {
	doc := Markdown(&record.Record{SourceFileName: "deck.json"})
	assert.Contains(t, doc, "**データソース**: スライド自動抽出")
}

func TestMarkdownTitleFallsBackToClient(t *testing.T) {
	doc := Markdown(&record.Record{ClientName: "広研"})
	assert.True(t, strings.HasPrefix(doc, "# 【広研様】案件\n"))
}

func TestFileName(t *testing.T) {
	r := &record.Record{
		ProjectName:  "イベント",
		ClientName:   "広研",
		RegisteredAt: jst(2025, time.March, 15, 9, 0),
	}
	assert.Equal(t, "20250315_【広研様】イベント.md", FileName(r))
}

func TestFileNameSanitizesUnsafeChars(t *testing.T) {
	r := &record.Record{
		ProjectName:  `夏/祭り:企画?`,
		RegisteredAt: jst(2025, time.March, 15, 9, 0),
	}
	got := FileName(r)
	assert.Equal(t, "20250315_夏_祭り_企画_.md", got)
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, `\`)
}

func TestFileNameFallbacks(t *testing.T) {
	assert.Equal(t, "_プロモーション案件.md", FileName(&record.Record{}))
	r := &record.Record{EventType: "展示会", RegisteredAt: jst(2025, time.January, 2, 0, 0)}
	assert.Equal(t, "20250102_展示会.md", FileName(r))
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1500000, "1,500,000"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, groupDigits(tt.in))
	}
}
