package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS audit_events (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		condition TEXT NOT NULL DEFAULT '',
		top_medication TEXT NOT NULL DEFAULT '',
		certainty TEXT NOT NULL DEFAULT '',
		dangerous_interaction BOOLEAN NOT NULL DEFAULT FALSE,
		unresolved BOOLEAN NOT NULL DEFAULT FALSE,
		at TIMESTAMPTZ NOT NULL,
		seq BIGSERIAL
	)`

// At is kept to the second, so seq orders events recorded within one second.
const postgresSeqColumn = `ALTER TABLE audit_events ADD COLUMN IF NOT EXISTS seq BIGSERIAL`

// PostgresStore persists events to PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres opens a database/sql handle backed by pgx and verifies it.
func OpenPostgres(ctx context.Context, url string) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	db := stdlib.OpenDB(*cfg)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

// NewPostgresStore wraps an open handle and ensures the table exists.
func NewPostgresStore(ctx context.Context, db *sql.DB) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	if _, err := db.ExecContext(ctx, postgresSeqColumn); err != nil {
		return nil, fmt.Errorf("add seq column: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Record(ctx context.Context, e Event) (Event, error) {
	e = stamp(e)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_events (id, kind, condition, top_medication, certainty, dangerous_interaction, unresolved, at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, e.ID, string(e.Kind), e.Condition, e.TopMedication, e.Certainty, e.DangerousInteraction, e.Unresolved, e.At)
	if err != nil {
		return Event{}, fmt.Errorf("insert audit event: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, condition, top_medication, certainty, dangerous_interaction, unresolved, at
		FROM audit_events
		ORDER BY at DESC, seq DESC
		LIMIT $1
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
		)
		if err := rows.Scan(&e.ID, &kind, &e.Condition, &e.TopMedication, &e.Certainty, &e.DangerousInteraction, &e.Unresolved, &e.At); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		e.Kind = Kind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Close is a no-op: the handle belongs to whoever opened it.
func (s *PostgresStore) Close() error {
	return nil
}
