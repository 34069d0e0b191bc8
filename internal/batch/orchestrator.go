package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/ledger"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/normalize"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/store"
)

// Runner drives one batch pass over a set of analysis JSON files.
type Runner struct {
	Store  store.RowStore
	Ledger *ledger.Ledger // nil disables dedup
	Logger *slog.Logger
	Pacing time.Duration // cooperative delay between items
}

// Result tallies one batch pass. Processed counts rows actually appended;
// Total counts every file the pass looked at, including skips and failures.
type Result struct {
	Processed int
	Skipped   int
	Failed    int
	Total     int
}

// Run processes each file in order and appends one main-sheet row per
// successful document. A failing file is counted and logged, never fatal;
// only an unusable store (or a cancelled context) aborts the pass.
func (b *Runner) Run(ctx context.Context, files []string) (Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := b.Store.GetOrCreateSheet(ctx, constants.MainSheet, constants.MainHeaders); err != nil {
		return Result{}, fmt.Errorf("prepare main sheet: %w", err)
	}

	res := Result{Total: len(files)}
	for i, path := range files {
		if i > 0 && b.Pacing > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(b.Pacing):
			}
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		name := filepath.Base(path)
		status, confidence, err := b.processFile(ctx, path, name, logger)
		switch status {
		case constants.ItemStatusOK:
			res.Processed++
			logger.Info("batch.file.ok", "file", name, "confidence", confidence)
		case constants.ItemStatusSkipped:
			res.Skipped++
			logger.Info("batch.file.skip", "file", name)
		case constants.ItemStatusFailed:
			res.Failed++
			logger.Error("batch.file.fail", "file", name, "error", err)
		}
	}

	logger.Info("batch.done",
		"processed", res.Processed, "skipped", res.Skipped,
		"failed", res.Failed, "total", res.Total)
	return res, nil
}

func (b *Runner) processFile(ctx context.Context, path, name string, logger *slog.Logger) (constants.ItemStatus, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return constants.ItemStatusFailed, 0, fmt.Errorf("read %s: %w", name, err)
	}

	hash := ledger.Hash(data)
	if b.Ledger != nil {
		seen, err := b.Ledger.Seen(ctx, hash)
		if err != nil {
			return constants.ItemStatusFailed, 0, err
		}
		if seen {
			return constants.ItemStatusSkipped, 0, nil
		}
	}

	// Schema validation is advisory: producers drift, the normalizer copes.
	if err := normalize.ValidateDocument(data); err != nil {
		logger.Warn("batch.file.schema", "file", name, "error", err)
	}

	doc, err := normalize.DecodeDocument(data)
	if err != nil {
		b.recordOutcome(ctx, name, hash, constants.ItemStatusFailed, 0, logger)
		return constants.ItemStatusFailed, 0, fmt.Errorf("decode %s: %w", name, err)
	}
	if doc.Error != "" {
		b.recordOutcome(ctx, name, hash, constants.ItemStatusFailed, 0, logger)
		return constants.ItemStatusFailed, 0, fmt.Errorf("producer error in %s: %s", name, doc.Error)
	}

	r := normalize.FromDocument(doc)
	if r.SourceFileName == "" {
		r.SourceFileName = name
	}
	r.RegisteredAt = time.Now().In(record.JST)

	if err := b.Store.AppendRow(ctx, constants.MainSheet, MainRow(r)); err != nil {
		b.recordOutcome(ctx, name, hash, constants.ItemStatusFailed, r.ConfidenceScore, logger)
		return constants.ItemStatusFailed, 0, fmt.Errorf("append %s: %w", name, err)
	}

	b.recordOutcome(ctx, name, hash, constants.ItemStatusOK, r.ConfidenceScore, logger)
	return constants.ItemStatusOK, r.ConfidenceScore, nil
}

func (b *Runner) recordOutcome(ctx context.Context, name, hash string, status constants.ItemStatus, confidence int, logger *slog.Logger) {
	if b.Ledger == nil {
		return
	}
	if err := b.Ledger.Record(ctx, name, hash, status, confidence); err != nil {
		logger.Warn("batch.ledger.record", "file", name, "error", err)
	}
}
