package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/extract"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/score"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/slides"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/tags"
)

// RunDecks processes serialized slide decks: each deck is flattened to raw
// text, run through the field extractor, and appended to the results sheet.
// Successful extractions are additionally appended to the main knowledge
// sheet in its simplified 20-column form. Every deck gets a results row, so
// file numbering in the sheet stays contiguous across failures.
func (b *Runner) RunDecks(ctx context.Context, files []string) (Result, error) {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := b.Store.GetOrCreateSheet(ctx, constants.ResultsSheet, constants.ResultsHeaders); err != nil {
		return Result{}, fmt.Errorf("prepare results sheet: %w", err)
	}
	if err := b.Store.GetOrCreateSheet(ctx, constants.SetupSheet, constants.SetupHeaders); err != nil {
		return Result{}, fmt.Errorf("prepare knowledge sheet: %w", err)
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
		r, err := b.extractDeck(path, name)
		ok := err == nil

		// Store append failures mark the item failed like any other
		// per-item error; only an unusable sheet aborts the run.
		if appendErr := b.Store.AppendRow(ctx, constants.ResultsSheet, ResultsRow(i+1, name, ok, r)); appendErr != nil && ok {
			ok = false
			err = fmt.Errorf("append results row: %w", appendErr)
		}
		if ok {
			if appendErr := b.Store.AppendRow(ctx, constants.SetupSheet, SetupRow(r)); appendErr != nil {
				ok = false
				err = fmt.Errorf("append knowledge row: %w", appendErr)
			}
		}

		if ok {
			res.Processed++
			logger.Info("deck.extract.ok", "file", name, "confidence", r.ConfidenceScore)
		} else {
			res.Failed++
			logger.Error("deck.extract.fail", "file", name, "error", err)
		}
	}

	logger.Info("deck.done", "processed", res.Processed, "failed", res.Failed, "total", res.Total)
	return res, nil
}

// extractDeck always returns a record with registration metadata set, even on
// failure, so the results row can carry a timestamp.
func (b *Runner) extractDeck(path, name string) (*record.Record, error) {
	r := &record.Record{
		SourceFileName: name,
		RegisteredAt:   time.Now().In(record.JST),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("read %s: %w", name, err)
	}
	deck, err := slides.ParseDeck(data)
	if err != nil {
		return r, fmt.Errorf("parse deck %s: %w", name, err)
	}

	rawText := deck.RawText()
	f := extract.Extract(rawText)

	r.ClientName = f.ClientName
	r.EventDate = f.Period
	r.UnitPrice = f.UnitPrice
	r.OrderQuantity = f.Quantity
	r.SlideCount = len(deck.Slides)
	r.SlideTextSample = truncateRunes(rawText, slideTextLimit)
	if f.PrizeName != "" {
		r.NoveltyItems = []string{f.PrizeName}
	}
	if f.Vendor != "" {
		r.PartnerCompanies = []string{f.Vendor}
	}
	r.Tags = tags.Generate(rawText, f.UnitPrice)
	r.ConfidenceScore = score.Analysis(r)
	return r, nil
}
