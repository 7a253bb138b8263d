//go:build !wireinject

package di

import (
	"fmt"

	"github.com/edwisely/concept-clarifier/internal/clarify"
	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/handler"
	"github.com/edwisely/concept-clarifier/internal/metrics"
	"github.com/edwisely/concept-clarifier/internal/openai"
	"github.com/edwisely/concept-clarifier/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metricsStore := metrics.NewStore()

	client, err := openai.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("openai client: %w", err)
	}

	prompts, err := clarify.NewPrompts()
	if err != nil {
		return nil, fmt.Errorf("clarify prompts: %w", err)
	}

	service, err := clarify.NewService(client, prompts, logger)
	if err != nil {
		return nil, fmt.Errorf("clarify service: %w", err)
	}

	clarifyHandler := handler.NewClarifyHandler(service, logger)
	router := handler.NewRouter(cfg, logger, metricsStore, clarifyHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg), nil
}
