package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/common"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/normalize"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
	"github.com/kshoda-lgtm/8CUBE-promotion/internal/render"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in     = flag.String("in", "", "form response JSON file (required)")
		outdir = flag.String("outdir", "", "output directory for the Markdown document (default: KB_OUTPUT_DIR)")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *in == "" {
		printError("Error: --in is required\n")
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if *outdir == "" {
		*outdir = cfg.Docs.OutputDir
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read form response", "path", *in, "error", err)
		os.Exit(1)
	}

	var fr normalize.FormResponse
	if err := json.Unmarshal(data, &fr); err != nil {
		logger.Error("failed to decode form response", "path", *in, "error", err)
		os.Exit(1)
	}

	r := normalize.FromForm(fr)
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = time.Now().In(record.JST)
	}

	doc := render.Markdown(r)
	name := render.FileName(r)

	if err := os.MkdirAll(*outdir, 0o755); err != nil {
		logger.Error("failed to create output directory", "dir", *outdir, "error", err)
		os.Exit(1)
	}
	outPath := filepath.Join(*outdir, name)
	if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
		logger.Error("failed to write document", "path", outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("document written", "path", outPath, "project", r.ProjectName)

	if cfg.Docs.AssistantDir != "" {
		if err := os.MkdirAll(cfg.Docs.AssistantDir, 0o755); err != nil {
			logger.Error("failed to create assistant directory", "dir", cfg.Docs.AssistantDir, "error", err)
			os.Exit(1)
		}
		copyPath := filepath.Join(cfg.Docs.AssistantDir, name)
		if err := os.WriteFile(copyPath, []byte(doc), 0o644); err != nil {
			logger.Error("failed to write assistant copy", "path", copyPath, "error", err)
			os.Exit(1)
		}
		logger.Info("assistant copy written", "path", copyPath)
	}
}
