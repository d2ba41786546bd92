package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/RxAdvisor/internal/advisor"
	"github.com/Skufu/RxAdvisor/internal/recommend"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Options struct {
	MaxBodyBytes   int64
	RateLimitRPS   float64
	RateLimitBurst int
	StaticRoot     string
}

type Server struct {
	advisor *advisor.Advisor
	db      HealthChecker
	logger  *logrus.Logger
	router  *gin.Engine
}

type analyzeRequest struct {
	Symptoms string `json:"symptoms"`
}

type recommendationRequest struct {
	HealthProblem string  `json:"healthProblem"`
	Gender        *string `json:"gender"`
	Age           any     `json:"age"`
	ExistingDrug  string  `json:"existingDrug"`
	SymptomText   string  `json:"symptomText"`
}

// NewServer wires routes and middleware. db may be nil when no database is
// configured.
func NewServer(adv *advisor.Advisor, db HealthChecker, logger *logrus.Logger, opts Options) (*Server, error) {
	limiter, err := newClientLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		requestID(),
		requestLogger(logger),
		gin.Recovery(),
		limitBodySize(opts.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
			MaxAge:       12 * time.Hour,
		}),
	)

	s := &Server{advisor: adv, db: db, logger: logger, router: router}

	if opts.StaticRoot != "" {
		router.Static("/static", filepath.Join(opts.StaticRoot, "static"))
		if fileExists(filepath.Join(opts.StaticRoot, "index.html")) {
			router.StaticFile("/", filepath.Join(opts.StaticRoot, "index.html"))
		}
	}

	router.GET("/healthz", s.handleHealth)
	router.GET("/readyz", s.handleReady)

	api := router.Group("/api", limiter.middleware())
	api.POST("/analyze-symptoms", s.handleAnalyzeSymptoms)
	api.POST("/ai-recommendation", s.handleRecommendation)
	api.GET("/audit/recent", s.handleRecentAudit)

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleReady(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "disabled"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"db":     fmt.Sprintf("unhealthy: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "ok"})
}

func (s *Server) handleAnalyzeSymptoms(c *gin.Context) {
	var payload analyzeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	results, ok := s.advisor.AnalyzeSymptoms(c.Request.Context(), payload.Symptoms)
	c.JSON(http.StatusOK, gin.H{
		"success": ok,
		"results": results,
	})
}

func (s *Server) handleRecommendation(c *gin.Context) {
	var payload recommendationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	age, err := recommend.ParseAge(payload.Age)
	if err != nil {
		validationFailed(c, err)
		return
	}

	gender := recommend.DefaultGender
	if payload.Gender != nil {
		gender = *payload.Gender
	}

	rec := s.advisor.Recommend(c.Request.Context(), recommend.Request{
		HealthProblem: payload.HealthProblem,
		Gender:        gender,
		Age:           age,
		ExistingDrug:  payload.ExistingDrug,
		SymptomText:   payload.SymptomText,
	})
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"recommendation": rec,
	})
}

func (s *Server) handleRecentAudit(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			validationFailed(c, fmt.Errorf("limit must be an integer"))
			return
		}
		limit = n
	}

	events, err := s.advisor.RecentAudit(c.Request.Context(), limit)
	if err != nil {
		s.logger.WithError(err).Error("audit listing failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audit unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func validationFailed(c *gin.Context, err error) {
	details := err.Error()
	if errors.Is(err, recommend.ErrInvalidAge) {
		details = "age: " + details
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation_failed",
		"details": details,
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
