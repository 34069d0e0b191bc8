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
		dir = flag.String("dir", "", "directory of serialized slide decks (required unless files are given)")
		out = flag.String("out", "", "workbook path (default: KB_WORKBOOK_PATH)")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out == "" {
		*out = cfg.Store.WorkbookPath
	}

	files := flag.Args()
	if len(files) == 0 {
		if *dir == "" {
			printError("Error: --dir or at least one deck file is required\n")
			os.Exit(1)
		}
		discovered, stats, err := ingest.DiscoverJSON(*dir)
		if err != nil {
			logger.Error("failed to scan deck directory", "dir", *dir, "error", err)
			os.Exit(1)
		}
		logger.Info("decks scanned",
			"dir", *dir, "scanned", stats.Scanned,
			"matched", stats.Matched, "excluded", stats.Excluded)
		files = discovered
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

	runner := &batch.Runner{
		Store:  wb,
		Logger: logger,
		Pacing: cfg.Batch.PacingDelay,
	}

	res, err := runner.RunDecks(ctx, files)
	if err != nil {
		logger.Error("deck run aborted", "error", err)
		os.Exit(1)
	}
	if err := wb.Save(); err != nil {
		logger.Error("failed to save workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("extraction complete",
		"processed", res.Processed, "failed", res.Failed,
		"total", res.Total, "workbook", *out)
}
