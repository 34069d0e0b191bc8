package common

import (
	"os"
	"time"
)

// Config holds all application configuration. It is loaded once in each
// entry point and threaded explicitly into constructors; nothing reads it as
// shared global state.
type Config struct {
	Store StoreConfig
	Batch BatchConfig
	Docs  DocsConfig
}

// StoreConfig locates the shared workbook and the processing ledger.
type StoreConfig struct {
	WorkbookPath string
	LedgerPath   string
}

// BatchConfig controls the analysis-file batch run.
type BatchConfig struct {
	InboxDir      string
	PacingDelay   time.Duration // cooperative delay between items, rate-limit courtesy
	WatchDebounce time.Duration
}

// DocsConfig locates the Markdown output directories for the form path.
type DocsConfig struct {
	OutputDir    string
	AssistantDir string // optional second copy for the assistant's intake
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Store: StoreConfig{
			WorkbookPath: getEnv("KB_WORKBOOK_PATH", "./knowledge.xlsx"),
			LedgerPath:   getEnv("KB_LEDGER_PATH", "./knowledge.db"),
		},
		Batch: BatchConfig{
			InboxDir:      getEnv("KB_INBOX_DIR", "./inbox"),
			PacingDelay:   getEnvAsDuration("KB_PACING_DELAY", time.Second),
			WatchDebounce: getEnvAsDuration("KB_WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Docs: DocsConfig{
			OutputDir:    getEnv("KB_OUTPUT_DIR", "./output"),
			AssistantDir: getEnv("KB_ASSISTANT_DIR", ""),
		},
	}
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if c.Store.WorkbookPath == "" {
		return NewAppError("CONFIG_ERROR", "KB_WORKBOOK_PATH is required", ErrInvalidInput)
	}
	if c.Store.LedgerPath == "" {
		return NewAppError("CONFIG_ERROR", "KB_LEDGER_PATH is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
