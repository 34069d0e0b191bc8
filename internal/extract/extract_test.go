package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestExtractFullSlideText(t *testing.T) {
	text := `
=== スライド 1 ===
クライアント：広研様
夏のキャンペーン企画
エコバッグ配布企画
単価：¥1,500円
数量：2,000個
協力会社：大阪印刷株式会社
2024年7月実施
`
	f := Extract(text)

	assert.Equal(t, "広研", f.ClientName, "honorific is stripped from the client")
	assert.Equal(t, "エコバッグ", f.PrizeName)
	require.NotNil(t, f.UnitPrice)
	assert.Equal(t, 1500, *f.UnitPrice, "thousands separator is stripped")
	require.NotNil(t, f.Quantity)
	assert.Equal(t, 2000, *f.Quantity)
	assert.Equal(t, "大阪印刷株式会社", f.Vendor)
	assert.Equal(t, "2024年7月", f.Period)
}

func TestExtractClient(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"labelled", "クライアント：サンプル商事", "サンプル商事"},
		{"company prefix", "株式会社テスト向け提案", "株式会社テスト向け提案"},
		{"company suffix", "テスト株式会社 御中", "テスト株式会社"},
		{"bare honorific", "広研様のイベント", "広研"},
		{"none", "イベント企画書", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).ClientName)
		})
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"labelled with symbol", "単価：¥1,500円", intp(1500)},
		{"bare symbol", "景品は￥300です", intp(300)},
		{"at sign", "@¥250", intp(250)},
		{"approximate", "約 800円 を想定", intp(800)},
		{"teido", "1200円程度", intp(1200)},
		{"one coin idiom", "ワンコインで配れる景品", intp(500)},
		{"no price", "価格は未定です", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text).UnitPrice
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *int
	}{
		{"labelled", "数量：2,000個", intp(2000)},
		{"lot", "ロット：500", intp(500)},
		{"distribution", "3000個配布する", intp(3000)},
		{"total", "合計 1,200枚", intp(1200)},
		{"none", "数量は応相談", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text).Quantity
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestExtractVendorRequiresOrgSuffix(t *testing.T) {
	assert.Equal(t, "大和製作所", Extract("発注先：大和製作所").Vendor)
	assert.Equal(t, "", Extract("発注先は検討中").Vendor)
}

func TestExtractPeriod(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"year month", "2024年10月に実施", "2024年10月"},
		{"quarter", "2025年Q2の施策", "2025年Q2"},
		{"season", "冬のキャンペーン", "冬"},
		{"bare month", "10月開催", "10月"},
		{"none", "時期未定", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text).Period)
		})
	}
}

func TestExtractEmptyText(t *testing.T) {
	f := Extract("")
	assert.Equal(t, Fields{}, f)
}

func TestExtractIsDeterministic(t *testing.T) {
	text := "クライアント：広研様 単価：¥500 タンブラー 1000個配布"
	assert.Equal(t, Extract(text), Extract(text))
}
