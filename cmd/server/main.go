package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/RxAdvisor/internal/advisor"
	"github.com/Skufu/RxAdvisor/internal/api"
	"github.com/Skufu/RxAdvisor/internal/audit"
	"github.com/Skufu/RxAdvisor/internal/config"
	"github.com/Skufu/RxAdvisor/internal/knowledge"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	var db *sql.DB
	if cfg.EnableDB {
		db, err = audit.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()
	}

	store, err := openAuditStore(ctx, cfg, db)
	if err != nil {
		logger.Fatalf("audit store: %v", err)
	}
	defer store.Close()

	adv, err := advisor.New(knowledge.Default(), audit.NewBreakerStore(store, logger), logger, cfg.CacheSize)
	if err != nil {
		logger.Fatalf("advisor: %v", err)
	}

	var health api.HealthChecker
	if db != nil {
		health = dbChecker{db}
	}

	staticRoot := cfg.StaticRoot
	if staticRoot == "" {
		staticRoot = detectStaticRoot()
	}

	srv, err := api.NewServer(adv, health, logger, api.Options{
		MaxBodyBytes:   cfg.MaxBodyBytes,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		StaticRoot:     staticRoot,
	})
	if err != nil {
		logger.Fatalf("router: %v", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"audit_driver": cfg.AuditDriver,
		"db":           cfg.EnableDB,
	}).Info("server listening")
	waitForShutdown(server, logger)
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openAuditStore picks the backend named by AUDIT_DRIVER. The postgres
// driver reuses the shared database handle.
func openAuditStore(ctx context.Context, cfg *config.Config, db *sql.DB) (audit.Store, error) {
	switch cfg.AuditDriver {
	case "sqlite":
		return audit.NewSQLiteStore(cfg.AuditSQLitePath)
	case "postgres":
		return audit.NewPostgresStore(ctx, db)
	case "memory":
		return audit.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown audit driver %q", cfg.AuditDriver)
	}
}

type dbChecker struct {
	db *sql.DB
}

func (d dbChecker) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func waitForShutdown(server *http.Server, logger *logrus.Logger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
}

func detectStaticRoot() string {
	startDir, err := os.Getwd()
	if err != nil {
		return "."
	}

	candidates := []string{
		startDir,
		filepath.Dir(startDir),
		filepath.Dir(filepath.Dir(startDir)),
	}

	for _, dir := range candidates {
		if fileExists(filepath.Join(dir, "index.html")) {
			return dir
		}
	}

	return startDir
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
