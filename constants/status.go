package constants

// ItemStatus is the canonical per-item outcome recorded in the ledger and
// the extraction-results sheet.
type ItemStatus string

// Stable values (store these exact strings).
const (
	ItemStatusOK      ItemStatus = "OK"      // row appended
	ItemStatusSkipped ItemStatus = "SKIPPED" // excluded or already processed
	ItemStatusFailed  ItemStatus = "FAILED"  // decode/normalize/store failure
)

// Spreadsheet-facing status labels, kept verbatim from the shared workbook.
const (
	StatusLabelSuccess = "✅ 成功"
	StatusLabelFailure = "❌ 失敗"
)
