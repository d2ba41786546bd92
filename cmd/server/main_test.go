package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/RxAdvisor/internal/audit"
	"github.com/Skufu/RxAdvisor/internal/config"
)

func TestNewLoggerFormatAndLevel(t *testing.T) {
	logger := newLogger(&config.Config{LogFormat: "text", LogLevel: "debug"})
	if _, ok := logger.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("expected text formatter, got %T", logger.Formatter)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}

	logger = newLogger(&config.Config{LogFormat: "json", LogLevel: "bogus"})
	if _, ok := logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected json formatter, got %T", logger.Formatter)
	}
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %s", logger.GetLevel())
	}
}

func TestOpenAuditStoreMemory(t *testing.T) {
	store, err := openAuditStore(context.Background(), &config.Config{AuditDriver: "memory"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*audit.MemoryStore); !ok {
		t.Fatalf("expected memory store, got %T", store)
	}
}

func TestOpenAuditStoreSQLite(t *testing.T) {
	cfg := &config.Config{AuditDriver: "sqlite", AuditSQLitePath: filepath.Join(t.TempDir(), "audit.db")}
	store, err := openAuditStore(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(cfg.AuditSQLitePath); err != nil {
		t.Fatalf("expected sqlite file to exist: %v", err)
	}
}

func TestOpenAuditStorePostgresNeedsHandle(t *testing.T) {
	if _, err := openAuditStore(context.Background(), &config.Config{AuditDriver: "postgres"}, nil); err == nil {
		t.Fatal("expected error without a database handle")
	}
}

func TestOpenAuditStoreUnknownDriver(t *testing.T) {
	if _, err := openAuditStore(context.Background(), &config.Config{AuditDriver: "redis"}, nil); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestDBCheckerPing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	checker := dbChecker{db}
	if err := checker.Ping(context.Background()); err != nil {
		t.Fatalf("expected healthy ping, got %v", err)
	}
	if err := checker.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDetectStaticRootFindsIndex(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "index.html"), []byte("ok"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "cmd", "server")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	got, err := filepath.EvalSymlinks(detectStaticRoot())
	if err != nil {
		t.Fatal(err)
	}
	want, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}
