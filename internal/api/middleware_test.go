package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Ensure limitBodySize middleware allows small payloads and blocks large ones.
func TestLimitBodySize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limitBodySize(10))
	router.POST("/echo", func(c *gin.Context) {
		_, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/echo", strings.NewReader("12345"))
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/echo", strings.NewReader("01234567890"))
		router.ServeHTTP(w, req)
		if w.Code != http.StatusRequestEntityTooLarge {
			t.Fatalf("expected 413, got %d", w.Code)
		}
	})
}

func TestClientLimiterTracksClientsSeparately(t *testing.T) {
	l, err := newClientLimiter(0.001, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !l.get("10.0.0.1").Allow() {
		t.Fatal("first request from 10.0.0.1 should pass")
	}
	if l.get("10.0.0.1").Allow() {
		t.Fatal("second request from 10.0.0.1 should be limited")
	}
	if !l.get("10.0.0.2").Allow() {
		t.Fatal("10.0.0.2 has its own bucket")
	}
}

func TestClientLimiterUnlimited(t *testing.T) {
	l, err := newClientLimiter(0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 100; i++ {
		if !l.get("10.0.0.1").Allow() {
			t.Fatalf("request %d limited with rate disabled", i)
		}
	}
}
