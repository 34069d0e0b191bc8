package extract

import "regexp"

// Rule is one entry in a first-match-wins cascade. Rules are ordered by
// precision: labelled values first, bare symbols next, contextual idioms
// last. A labelled match is always trusted over a coincidental number
// elsewhere in the text.
type Rule struct {
	Pattern *regexp.Regexp
	// Fixed substitutes a constant for idiomatic phrases that carry no
	// digits themselves (ワンコイン → 500). Zero means "parse the group".
	Fixed int
}

func rule(expr string) Rule { return Rule{Pattern: regexp.MustCompile(expr)} }

func fixed(expr string, v int) Rule {
	return Rule{Pattern: regexp.MustCompile(expr), Fixed: v}
}

// ClientRules extract the client name. Explicit labels win over company-form
// tokens, which win over the bare honorific.
var ClientRules = []Rule{
	rule(`(?:クライアント|顧客|お客様)[：:]\s*([^\s\n]+)`),
	rule(`(株式会社[^\s\n]+)`),
	rule(`([^\s\n]+株式会社)`),
	rule(`([^\s\n]+様)`),
}

// PrizeRules extract the novelty/prize name from a fixed goods vocabulary,
// then from compound product names.
var PrizeRules = []Rule{
	rule(`(エコバッグ|タンブラー|ボールペン|マグカップ|タオル|キーホルダー|ステッカー)`),
	rule(`(カレンダー|Tシャツ|パーカー|キャップ|トートバッグ|USB|モバイルバッテリー)`),
	rule(`(スマホスタンド|団扇|うちわ|クリアファイル|ノート|メモ帳|ペン|マスク)`),
	rule(`(除菌|ハンドクリーム|ティッシュ|ウェットティッシュ|手帳)`),
	rule(`([^\s]+バッグ|[^\s]+ペン|[^\s]+タンブラー|[^\s]+マグ)`),
}

// PriceRules extract the unit price in yen.
var PriceRules = []Rule{
	rule(`(?:単価|価格|金額)[：:\s]*[¥￥]?([\d,]+)円?`),
	rule(`[¥￥]([\d,]+)円?(?:/個|/枚|/本)?`),
	rule(`@\s*[¥￥]?([\d,]+)円?`),
	rule(`約\s*[¥￥]?([\d,]+)円?`),
	rule(`([\d,]+)円程度`),
	fixed(`ワンコイン`, 500),
}

// QuantityRules extract the order quantity. Unit suffixes are allowed in the
// match but discarded from the parsed value.
var QuantityRules = []Rule{
	rule(`(?:数量|ロット|個数)[：:\s]*([\d,]+)\s*(?:個|枚|本|セット)?`),
	rule(`([\d,]+)\s*(?:個|枚|本|セット)(?:配布|製作)`),
	rule(`合計\s*([\d,]+)(?:個|枚|本)`),
}

// VendorRules extract the partner company. The token must end in an
// organization-form suffix to avoid matching arbitrary phrases.
var VendorRules = []Rule{
	rule(`(?:制作会社|協力会社|発注先|印刷会社)[：:\s]*([^\s\n]+(?:株式会社|有限会社|印刷|製作所)[^\s\n]*)`),
	rule(`([^\s\n]+(?:株式会社|有限会社|印刷|製作所)[^\s\n]*)`),
}

// PeriodRules extract the event period as free-form text.
var PeriodRules = []Rule{
	rule(`(\d{4}年\d{1,2}月)`),
	rule(`(\d{4}年Q[1-4])`),
	rule(`(春|夏|秋|冬)(?:季|期)?`),
	rule(`(\d{1,2}月)`),
}
