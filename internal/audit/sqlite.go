package audit

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists events to a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create audit dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS audit_events (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			condition TEXT NOT NULL DEFAULT '',
			top_medication TEXT NOT NULL DEFAULT '',
			certainty TEXT NOT NULL DEFAULT '',
			dangerous_interaction INTEGER NOT NULL DEFAULT 0,
			unresolved INTEGER NOT NULL DEFAULT 0,
			at_utc TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_audit_events_at ON audit_events(at_utc)"); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Record(ctx context.Context, e Event) (Event, error) {
	e = stamp(e)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, kind, condition, top_medication, certainty, dangerous_interaction, unresolved, at_utc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, string(e.Kind), e.Condition, e.TopMedication, e.Certainty, e.DangerousInteraction, e.Unresolved, e.At.Format(time.RFC3339))
	if err != nil {
		return Event{}, fmt.Errorf("insert audit event: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, condition, top_medication, certainty, dangerous_interaction, unresolved, at_utc
		FROM audit_events
		ORDER BY at_utc DESC, rowid DESC
		LIMIT ?
	`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			e    Event
			kind string
			at   string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Condition, &e.TopMedication, &e.Certainty, &e.DangerousInteraction, &e.Unresolved, &at); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Kind = Kind(kind)
		if e.At, err = time.Parse(time.RFC3339, at); err != nil {
			return nil, fmt.Errorf("parse audit time: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
