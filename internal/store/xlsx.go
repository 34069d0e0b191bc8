package store

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

// Workbook is the XLSX-backed RowStore. Rows accumulate in memory and are
// written out by Save; opening an existing file preserves prior rows.
type Workbook struct {
	path   string
	f      *excelize.File
	logger *slog.Logger
}

// OpenWorkbook opens the workbook at path, creating a new one if the file
// does not exist yet.
func OpenWorkbook(path string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("open workbook: %w", err)
		}
		logger.Info("store.workbook.opened", "path", path)
		return &Workbook{path: path, f: f, logger: logger}, nil
	}
	logger.Info("store.workbook.created", "path", path)
	return &Workbook{path: path, f: excelize.NewFile(), logger: logger}, nil
}

func (w *Workbook) GetOrCreateSheet(_ context.Context, name string, headers []string) error {
	if idx, _ := w.f.GetSheetIndex(name); idx != -1 {
		return nil
	}
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %q: %w", name, err)
	}
	activeIndex, _ := w.f.GetSheetIndex(name)
	w.f.SetActiveSheet(activeIndex)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := w.f.SetCellValue(name, cell, h); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}
	w.styleHeader(name, len(headers))
	return nil
}

func (w *Workbook) AppendRow(_ context.Context, sheet string, values []any) error {
	rows, err := w.f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	rowIdx := len(rows) + 1
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err := w.f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("write cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

// Save writes the workbook to disk.
func (w *Workbook) Save() error {
	if err := w.f.SaveAs(w.path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	w.logger.Info("store.workbook.saved", "path", w.path)
	return nil
}

func (w *Workbook) Close() error {
	return w.f.Close()
}

// Bytes returns the workbook as XLSX bytes without touching disk.
func (w *Workbook) Bytes() ([]byte, error) {
	buf, err := w.f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// styleHeader applies the shared workbook's header look: bold white on blue.
func (w *Workbook) styleHeader(sheet string, cols int) {
	styleID, err := w.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4285F4"}, Pattern: 1},
	})
	if err != nil {
		w.logger.Warn("store.header_style", "error", err)
		return
	}
	last, _ := excelize.CoordinatesToCellName(cols, 1)
	_ = w.f.SetCellStyle(sheet, "A1", last, styleID)

	// Uniform width keeps the Japanese headers readable.
	lastCol, _ := excelize.ColumnNumberToName(cols)
	_ = w.f.SetColWidth(sheet, "A", lastCol, 16)
}
