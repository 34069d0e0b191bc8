// Package ledger records which input files have already been appended to the
// shared workbook, so a re-run of the batch skips them instead of writing
// duplicate rows.
package ledger

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kshoda-lgtm/8CUBE-promotion/constants"
)

const schema = `
CREATE TABLE IF NOT EXISTS processed_files (
	id           TEXT PRIMARY KEY,
	file_name    TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	status       TEXT NOT NULL,
	confidence   INTEGER NOT NULL DEFAULT 0,
	processed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_processed_files_hash ON processed_files(content_hash);
`

// Ledger is a small SQLite table of processed inputs.
type Ledger struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the ledger database at path.
func Open(path string, logger *slog.Logger) (*Ledger, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init ledger schema: %w", err)
	}
	return &Ledger{db: db, logger: logger}, nil
}

// Hash returns the content hash used as the dedup key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Seen reports whether a file with this content hash was already recorded
// with a successful status.
func (l *Ledger) Seen(ctx context.Context, hash string) (bool, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM processed_files WHERE content_hash = ? AND status = ?`,
		hash, string(constants.ItemStatusOK),
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("ledger lookup: %w", err)
	}
	return n > 0, nil
}

// Record stores the outcome for one file.
func (l *Ledger) Record(ctx context.Context, fileName, hash string, status constants.ItemStatus, confidence int) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO processed_files (id, file_name, content_hash, status, confidence, processed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), fileName, hash, string(status), confidence,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("ledger record: %w", err)
	}
	return nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}
