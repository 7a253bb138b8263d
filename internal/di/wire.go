//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/edwisely/concept-clarifier/internal/clarify"
	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/handler"
	"github.com/edwisely/concept-clarifier/internal/metrics"
	"github.com/edwisely/concept-clarifier/internal/openai"
	"github.com/edwisely/concept-clarifier/internal/server"
)

func InitializeApp() (*App, error) {
	wire.Build(
		config.ProvideConfig,
		ProvideLogger,
		metrics.NewStore,
		openai.NewClient,
		wire.Bind(new(openai.Completer), new(*openai.Client)),
		clarify.NewPrompts,
		clarify.NewService,
		handler.NewClarifyHandler,
		handler.NewRouter,
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}
