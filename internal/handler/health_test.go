package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/metrics"
)

func newHealthRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		OpenAI: config.OpenAIConfig{
			APIKey:          apiKey,
			Model:           "gpt-3.5-turbo",
			Temperature:     0.7,
			MaxOutputTokens: 300,
			TimeoutSeconds:  60,
		},
		HTTP: config.HTTPConfig{HTTP2Enabled: true},
	}

	router := gin.New()
	RegisterHealthRoutes(router, cfg, metrics.NewStore())
	return router
}

func TestHealthRoutes(t *testing.T) {
	router := newHealthRouter("")

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}

	router = newHealthRouter("sk-test")
	req = httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestHealthConfigRoute(t *testing.T) {
	router := newHealthRouter("sk-test")

	req := httptest.NewRequest(http.MethodGet, "/health/config", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload RelayConfigResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Model != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model: %s", payload.Model)
	}
	if payload.TransportMode != "h2c" {
		t.Fatalf("expected h2c, got %s", payload.TransportMode)
	}
	if payload.MaxOutputTokens != 300 {
		t.Fatalf("unexpected max tokens: %d", payload.MaxOutputTokens)
	}
}

func TestHealthStatsRoute(t *testing.T) {
	router := newHealthRouter("sk-test")

	req := httptest.NewRequest(http.MethodGet, "/health/stats", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var snapshot map[string]float64
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if _, ok := snapshot["total_calls"]; !ok {
		t.Fatalf("expected total_calls in snapshot")
	}
}

func TestPrometheusMetricsRoute(t *testing.T) {
	router := newHealthRouter("sk-test")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}
