package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/health"
	"github.com/edwisely/concept-clarifier/internal/metrics"
)

// RelayConfigResponse: 릴레이 설정 응답입니다.
type RelayConfigResponse struct {
	Model           string  `json:"model"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
	TimeoutSeconds  int     `json:"timeout_seconds"`
	HTTP2Enabled    bool    `json:"http2_enabled"`
	TransportMode   string  `json:"transport_mode"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, metricsStore *metrics.Store) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		payload := health.Collect(cfg)
		status := http.StatusOK
		if payload.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, payload)
	})

	router.GET("/health/config", func(c *gin.Context) {
		transportMode := "h1"
		if cfg.HTTP.HTTP2Enabled {
			transportMode = "h2c"
		}

		c.JSON(http.StatusOK, RelayConfigResponse{
			Model:           cfg.OpenAI.Model,
			Temperature:     cfg.OpenAI.Temperature,
			MaxOutputTokens: cfg.OpenAI.MaxOutputTokens,
			TimeoutSeconds:  cfg.OpenAI.TimeoutSeconds,
			HTTP2Enabled:    cfg.HTTP.HTTP2Enabled,
			TransportMode:   transportMode,
		})
	})

	// 완성 API 호출 누적 통계
	router.GET("/health/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, metricsStore.Snapshot())
	})

	// Prometheus 메트릭 (장기 히스토리 분석용)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
