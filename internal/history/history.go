// Package history records every issued document in a small sqlite
// ledger under the .tcr dot-directory.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"tcr/internal/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS issuances (
	id         TEXT PRIMARY KEY,
	project    TEXT NOT NULL,
	sheet      TEXT NOT NULL,
	path       TEXT NOT NULL,
	judgment   TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_issuances_project ON issuances(project);
CREATE INDEX IF NOT EXISTS idx_issuances_created ON issuances(created_at);
`

// Entry is one issued document.
type Entry struct {
	ID        string    `json:"id"`
	Project   string    `json:"project"`
	Sheet     string    `json:"sheet"`
	Path      string    `json:"path"`
	Judgment  string    `json:"judgment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ledger wraps the sqlite connection with transaction helpers.
type Ledger struct {
	conn   *sql.DB
	logger *logging.Logger
	dbPath string
}

// Open opens or creates the ledger database at the given path, creating
// parent directories as needed.
func Open(dbPath string, logger *logging.Logger) (*Ledger, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create ledger directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize ledger schema: %w", err)
	}

	logger.Debug("ledger opened", map[string]interface{}{"path": dbPath})
	return &Ledger{conn: conn, logger: logger, dbPath: dbPath}, nil
}

// Close closes the ledger connection.
func (l *Ledger) Close() error {
	if l.conn != nil {
		return l.conn.Close()
	}
	return nil
}

// WithTx executes fn within a transaction, rolling back on error.
func (l *Ledger) WithTx(fn func(*sql.Tx) error) error {
	tx, err := l.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			l.logger.Error("failed to rollback transaction", map[string]interface{}{
				"error":          err.Error(),
				"rollback_error": rbErr.Error(),
			})
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Record stores one issuance and returns it with its generated ID.
func (l *Ledger) Record(project, sheet, path, judgment string) (*Entry, error) {
	e := &Entry{
		ID:        uuid.NewString(),
		Project:   project,
		Sheet:     sheet,
		Path:      path,
		Judgment:  judgment,
		CreatedAt: time.Now().UTC(),
	}

	err := l.WithTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO issuances (id, project, sheet, path, judgment, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Project, e.Sheet, e.Path, e.Judgment, e.CreatedAt.Format(time.RFC3339),
		)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record issuance: %w", err)
	}

	l.logger.Info("issuance recorded", map[string]interface{}{
		"sheet":    sheet,
		"project":  project,
		"judgment": judgment,
	})
	return e, nil
}

// Recent returns the newest entries, most recent first.
func (l *Ledger) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.conn.Query(
		`SELECT id, project, sheet, path, judgment, created_at FROM issuances ORDER BY created_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query issuances: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByProject returns all entries for one project, most recent first.
func (l *Ledger) ByProject(project string) ([]Entry, error) {
	rows, err := l.conn.Query(
		`SELECT id, project, sheet, path, judgment, created_at FROM issuances WHERE project = ? ORDER BY created_at DESC, id`,
		project,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query issuances: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var (
			e  Entry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Project, &e.Sheet, &e.Path, &e.Judgment, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan issuance: %w", err)
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp %q: %w", ts, err)
		}
		e.CreatedAt = t
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
