package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/RxAdvisor/internal/advisor"
	"github.com/Skufu/RxAdvisor/internal/audit"
	"github.com/Skufu/RxAdvisor/internal/knowledge"
)

type fakeDB struct {
	err error
}

func (f fakeDB) Ping(ctx context.Context) error {
	return f.err
}

func newTestServer(t *testing.T, db HealthChecker, opts Options) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	adv, err := advisor.New(knowledge.Default(), audit.NewMemoryStore(), logger, 32)
	require.NoError(t, err)

	srv, err := NewServer(adv, db, logger, opts)
	require.NoError(t, err)
	return srv
}

func do(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	rec := do(srv, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	srv := newTestServer(t, nil, Options{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestReadyz(t *testing.T) {
	rec := do(newTestServer(t, nil, Options{}), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "disabled", decode(t, rec)["db"])

	rec = do(newTestServer(t, fakeDB{}, Options{}), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["db"])

	rec = do(newTestServer(t, fakeDB{err: errors.New("down")}, Options{}), http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "degraded", body["status"])
	assert.Contains(t, body["db"], "down")
}

func TestAnalyzeSymptoms(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/analyze-symptoms", `{"symptoms":"wheezing, chest tightness and shortness of breath"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, results)
	first := results[0].(map[string]any)
	assert.Equal(t, "asthma", first["condition"])
	matchData := first["match_data"].(map[string]any)
	assert.Contains(t, matchData, "score")
	assert.Contains(t, matchData, "matched_symptoms")
}

func TestAnalyzeSymptomsNoMatch(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/analyze-symptoms", `{"symptoms":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Nil(t, body["results"])
}

func TestAnalyzeSymptomsInvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/analyze-symptoms", `{"symptoms":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid payload", decode(t, rec)["error"])
}

func TestRecommendation(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/ai-recommendation", `{"healthProblem":"asthma","gender":"female","age":"40","existingDrug":"aspirin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])

	r := body["recommendation"].(map[string]any)
	assert.Equal(t, "asthma", r["primary_condition"])
	assert.NotEmpty(t, r["timestamp"])

	patient := r["patient"].(map[string]any)
	assert.Equal(t, float64(40), patient["age"])
	assert.Equal(t, "adult", patient["age_category"])
	assert.Equal(t, "aspirin", patient["existing_medication"])

	safety := r["safety"].(map[string]any)
	assert.Equal(t, true, safety["has_dangerous_interaction"])
	assert.Equal(t, "Albuterol", safety["alternative_medication"])

	ai := r["ai_analysis"].(map[string]any)
	assert.Equal(t, true, ai["is_ai_enhanced"])
}

func TestRecommendationDefaults(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/ai-recommendation", `{"healthProblem":"migraine"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	r := decode(t, rec)["recommendation"].(map[string]any)
	patient := r["patient"].(map[string]any)
	assert.Equal(t, "adult", patient["gender"])
	assert.Equal(t, float64(30), patient["age"])
	assert.Nil(t, patient["existing_medication"])

	safety := r["safety"].(map[string]any)
	assert.Nil(t, safety["interaction_warning"])
	assert.Equal(t, []any{}, safety["safety_notes"])
}

func TestRecommendationUnresolved(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/ai-recommendation", `{"healthProblem":"unknown-condition-xyz"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	r := decode(t, rec)["recommendation"].(map[string]any)
	assert.Equal(t, true, r["error"])
	assert.NotEmpty(t, r["message"])
	assert.NotContains(t, r, "recommendations")
}

func TestRecommendationInvalidAge(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/ai-recommendation", `{"healthProblem":"asthma","age":"forty"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "validation_failed", body["error"])
	assert.Contains(t, body["details"], "age")
}

func TestRecommendationInvalidJSON(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	rec := do(srv, http.MethodPost, "/api/ai-recommendation", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBodyLimit(t *testing.T) {
	srv := newTestServer(t, nil, Options{MaxBodyBytes: 16})

	rec := do(srv, http.MethodPost, "/api/analyze-symptoms", `{"symptoms":"a very long description of chest pain"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(t, nil, Options{RateLimitRPS: 0.001, RateLimitBurst: 2})

	for i := 0; i < 2; i++ {
		rec := do(srv, http.MethodGet, "/api/audit/recent", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := do(srv, http.MethodGet, "/api/audit/recent", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = do(srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecentAudit(t *testing.T) {
	srv := newTestServer(t, nil, Options{})

	do(srv, http.MethodPost, "/api/analyze-symptoms", `{"symptoms":"heartburn and regurgitation"}`)
	do(srv, http.MethodPost, "/api/ai-recommendation", `{"healthProblem":"gerd","age":52}`)

	rec := do(srv, http.MethodGet, "/api/audit/recent?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	events := decode(t, rec)["events"].([]any)
	require.Len(t, events, 2)

	latest := events[0].(map[string]any)
	assert.Equal(t, "recommendation", latest["kind"])
	assert.Equal(t, "Omeprazole", latest["top_medication"])
	assert.NotContains(t, latest, "age")

	rec = do(srv, http.MethodGet, "/api/audit/recent?limit=abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestStaticIndex(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>rx</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "static"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "static", "app.js"), []byte("console.log(1)"), 0o644))

	srv := newTestServer(t, nil, Options{StaticRoot: root})

	rec := do(srv, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "rx")

	rec = do(srv, http.MethodGet, "/static/app.js", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
