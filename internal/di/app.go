package di

import (
	"log/slog"
	"net/http"

	"github.com/edwisely/concept-clarifier/internal/config"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server *http.Server
	Logger *slog.Logger
	Config *config.Config
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config) *App {
	return &App{
		Server: server,
		Logger: logger,
		Config: cfg,
	}
}
