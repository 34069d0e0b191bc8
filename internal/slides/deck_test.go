package slides

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeckAndRawText(t *testing.T) {
	data := []byte(`{
		"title": "夏祭り企画",
		"slides": [
			{
				"pageElements": [
					{"shape": {"text": {"textElements": [
						{"textRun": {"content": "クライアント：広研様\n"}},
						{"textRun": {"content": "単価：¥500\n"}}
					]}}}
				]
			},
			{
				"pageElements": [
					{"table": {"tableRows": [
						{"tableCells": [
							{"text": {"textElements": [{"textRun": {"content": "品名"}}]}},
							{"text": {"textElements": [{"textRun": {"content": "うちわ"}}]}}
						]},
						{"tableCells": [
							{"text": {"textElements": [{"textRun": {"content": "数量"}}]}},
							{"text": {"textElements": [{"textRun": {"content": "2,000個"}}]}}
						]}
					]}}
				]
			}
		]
	}`)

	deck, err := ParseDeck(data)
	require.NoError(t, err)
	require.Len(t, deck.Slides, 2)

	text := deck.RawText()

	assert.Contains(t, text, "=== スライド 1 ===")
	assert.Contains(t, text, "=== スライド 2 ===")
	assert.Contains(t, text, "クライアント：広研様")
	assert.Contains(t, text, "[テーブル]")
	assert.Contains(t, text, "品名 | うちわ | ")
	assert.Contains(t, text, "数量 | 2,000個 | ")

	// slide order is document order
	assert.Less(t, strings.Index(text, "スライド 1"), strings.Index(text, "スライド 2"))
}

func TestParseDeckRejectsMalformedJSON(t *testing.T) {
	_, err := ParseDeck([]byte(`{"slides": [`))
	assert.Error(t, err)
}

func TestRawTextEmptyDeck(t *testing.T) {
	d := &Deck{}
	assert.Equal(t, "", d.RawText())
}

func TestRawTextSkipsEmptyRuns(t *testing.T) {
	d := &Deck{Slides: []Slide{{
		PageElements: []PageElement{
			{Shape: &Shape{Text: &TextBody{TextElements: []TextElement{
				{TextRun: &TextRun{Content: ""}},
				{TextRun: nil},
				{TextRun: &TextRun{Content: "本文"}},
			}}}},
			{Shape: &Shape{}},
		},
	}}}
	text := d.RawText()
	assert.Contains(t, text, "本文")
}
