package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/batch"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/common"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/ingest"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/ledger"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/store"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir   = flag.String("dir", "", "inbox directory of analysis JSON files (default: KB_INBOX_DIR)")
		out   = flag.String("out", "", "workbook path (default: KB_WORKBOOK_PATH)")
		watch = flag.Bool("watch", false, "keep running and process files as they arrive")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		printError("Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if *dir == "" {
		*dir = cfg.Batch.InboxDir
	}
	if *out == "" {
		*out = cfg.Store.WorkbookPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	wb, err := store.OpenWorkbook(*out, logger)
	if err != nil {
		logger.Error("failed to open workbook", "path", *out, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := wb.Close(); err != nil {
			logger.Error("failed to close workbook", "error", err)
		}
	}()

	led, err := ledger.Open(cfg.Store.LedgerPath, logger)
	if err != nil {
		logger.Error("failed to open ledger", "path", cfg.Store.LedgerPath, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := led.Close(); err != nil {
			logger.Error("failed to close ledger", "error", err)
		}
	}()

	runner := &batch.Runner{
		Store:  wb,
		Ledger: led,
		Logger: logger,
		Pacing: cfg.Batch.PacingDelay,
	}

	files, stats, err := ingest.DiscoverJSON(*dir)
	if err != nil {
		logger.Error("failed to scan inbox", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("inbox scanned",
		"dir", *dir, "scanned", stats.Scanned,
		"matched", stats.Matched, "excluded", stats.Excluded)

	res, err := runner.Run(ctx, files)
	if err != nil {
		logger.Error("batch run aborted", "error", err)
		os.Exit(1)
	}
	if err := wb.Save(); err != nil {
		logger.Error("failed to save workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete",
		"processed", res.Processed, "skipped", res.Skipped,
		"failed", res.Failed, "total", res.Total, "workbook", *out)

	if !*watch {
		return
	}

	events, watchErrs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Root:     *dir,
		Debounce: cfg.Batch.WatchDebounce,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("watching inbox", "dir", *dir)

	for {
		select {
		case <-ctx.Done():
			logger.Info("watcher stopping")
			return
		case werr, ok := <-watchErrs:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", werr)
		case path, ok := <-events:
			if !ok {
				return
			}
			res, err := runner.Run(ctx, []string{path})
			if err != nil {
				logger.Error("watch run aborted", "file", path, "error", err)
				return
			}
			if res.Processed > 0 {
				if err := wb.Save(); err != nil {
					logger.Error("failed to save workbook", "error", err)
					return
				}
			}
		}
	}
}
