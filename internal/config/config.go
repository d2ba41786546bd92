// Package config loads server settings from .env, the environment and defaults.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	EnableDB        bool
	DatabaseURL     string
	AuditDriver     string
	AuditSQLitePath string
	CacheSize       int
	RateLimitRPS    float64
	RateLimitBurst  int
	MaxBodyBytes    int64
	StaticRoot      string
}

var (
	auditDrivers = map[string]bool{"memory": true, "sqlite": true, "postgres": true}
	logLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Load reads an optional .env file, then environment variables over defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Port:            v.GetString("PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
		EnableDB:        v.GetBool("ENABLE_DB"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		AuditDriver:     strings.ToLower(v.GetString("AUDIT_DRIVER")),
		AuditSQLitePath: v.GetString("AUDIT_SQLITE_PATH"),
		CacheSize:       v.GetInt("ANALYSIS_CACHE_SIZE"),
		RateLimitRPS:    v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:  v.GetInt("RATE_LIMIT_BURST"),
		MaxBodyBytes:    v.GetInt64("MAX_BODY_BYTES"),
		StaticRoot:      v.GetString("STATIC_ROOT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ENABLE_DB", false)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("AUDIT_DRIVER", "memory")
	v.SetDefault("AUDIT_SQLITE_PATH", "data/audit.db")
	v.SetDefault("ANALYSIS_CACHE_SIZE", 512)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("STATIC_ROOT", "")
}

func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	if !auditDrivers[c.AuditDriver] {
		return fmt.Errorf("invalid AUDIT_DRIVER: %q", c.AuditDriver)
	}
	if c.AuditDriver == "postgres" && !c.EnableDB {
		return fmt.Errorf("AUDIT_DRIVER=postgres requires ENABLE_DB=true")
	}
	if c.EnableDB && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}
	if c.CacheSize <= 0 {
		return fmt.Errorf("ANALYSIS_CACHE_SIZE must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}
