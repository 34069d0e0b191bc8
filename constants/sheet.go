package constants

// Sheet names in the shared knowledge workbook. The batch path and the deck
// path write different column contracts, so each owns its own sheet.
const (
	MainSheet    = "メインDB"
	SetupSheet   = "ナレッジDB"
	ResultsSheet = "抽出テスト結果"
)

// SummaryFileMarker excludes aggregate batch-summary files from discovery.
const SummaryFileMarker = "_batch_summary"

// MainHeaders is the batch-path column contract for the main knowledge sheet.
// Column order is versioned: any change here must update the row projection in
// internal/batch in lockstep.
var MainHeaders = []string{
	"登録日時", "担当者名", "クライアント名", "実施時期", "イベント種別",
	"景品カテゴリ", "具体的な景品名", "単価", "発注数量", "MOQ", "納期",
	"協力会社名", "協力会社評価", "会場名", "会場費用", "成功要因",
	"失敗・反省点", "企画書URL", "タグ", "信頼度スコア",
	"元ファイル名", "抽出テキスト", "全会社名",
}

// SetupHeaders is the simplified 20-column contract used by the slide
// extraction path's sheet; it stops at the confidence score.
var SetupHeaders = MainHeaders[:20]

// ResultsHeaders is the column contract for the extraction-results sheet.
var ResultsHeaders = []string{
	"ファイル番号", "ファイル名", "処理状況", "クライアント名", "景品名",
	"単価", "数量", "協力会社", "信頼度スコア", "抽出時刻",
}
