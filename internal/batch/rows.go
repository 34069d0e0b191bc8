// Package batch walks a directory of analysis JSON files (or extracted slide
// decks) and appends normalized rows to the shared knowledge workbook, one
// row per input, with per-item failure isolation.
package batch

import (
	"fmt"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
)

const slideTextLimit = 500

// MainRow projects a record onto the 23-column main-sheet contract
// (constants.MainHeaders). Columns the system cannot fill automatically are
// left blank for manual entry; their positions are fixed.
func MainRow(r *record.Record) []any {
	return []any{
		record.FormatDateTime(r.RegisteredAt),
		"", // 担当者名（手動入力）
		r.ClientName,
		r.EventDate,
		r.EventType,
		"", // 景品カテゴリ（後で分類）
		r.MainNovelty(),
		cellInt(r.UnitPrice),
		cellInt(r.OrderQuantity),
		"", // MOQ（後で入力）
		r.Deadline,
		r.MainCompany(),
		"", // 協力会社評価（後で評価）
		"", // 会場名（後で入力）
		"", // 会場費用（後で入力）
		"", // 成功要因（後で入力）
		"", // 失敗・反省点（後で入力）
		"", // 企画書URL（後で入力）
		r.TagString(),
		r.ConfidenceScore,
		r.SourceFileName,
		truncateRunes(r.SlideTextSample, slideTextLimit),
		r.AllCompanies(),
	}
}

// SetupRow projects a slide-extraction record onto the 20-column contract
// (constants.SetupHeaders) used by the deck path. The reference column
// carries the source deck, since the deck path has no document URL.
func SetupRow(r *record.Record) []any {
	ref := r.DocumentURL
	if ref == "" {
		ref = r.SourceFileName
	}
	return []any{
		record.FormatDateTime(r.RegisteredAt),
		"システム管理者",
		r.ClientName,
		r.EventDate,
		r.EventType,
		"", // 景品カテゴリ
		r.MainNovelty(),
		cellInt(r.UnitPrice),
		cellInt(r.OrderQuantity),
		"", // MOQ
		r.Deadline,
		r.MainCompany(),
		"", // 協力会社評価
		"", // 会場名
		"", // 会場費用
		"", // 成功要因
		"", // 失敗・反省点
		ref,
		r.TagString(),
		r.ConfidenceScore,
	}
}

// ResultsRow projects one deck-extraction outcome onto the 10-column
// extraction-results contract (constants.ResultsHeaders). A failed extraction
// keeps its slot in the sheet with エラー placeholders so file numbering stays
// contiguous.
func ResultsRow(fileNumber int, fileName string, ok bool, r *record.Record) []any {
	status := constants.StatusLabelFailure
	client, prize, price, quantity, vendor, confidence := "エラー", "エラー", "エラー", "エラー", "エラー", "0%"
	if ok {
		status = constants.StatusLabelSuccess
		client = orMissing(r.ClientName)
		prize = orMissing(r.MainNovelty())
		price = unitCell(r.UnitPrice, "円")
		quantity = unitCell(r.OrderQuantity, "個")
		vendor = orMissing(r.MainCompany())
		confidence = fmt.Sprintf("%d%%", r.ConfidenceScore)
	}
	return []any{
		fileNumber,
		fileName,
		status,
		client,
		prize,
		price,
		quantity,
		vendor,
		confidence,
		record.FormatDateTime(r.RegisteredAt),
	}
}

// cellInt renders an optional number as an empty cell when absent.
func cellInt(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}

func unitCell(n *int, unit string) string {
	if n == nil {
		return "未検出"
	}
	return fmt.Sprintf("%d%s", *n, unit)
}

func orMissing(s string) string {
	if s == "" {
		return "未検出"
	}
	return s
}

func truncateRunes(s string, limit int) string {
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}
