package config

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load 는 환경 변수 기반 설정을 로드한다.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig 는 설정을 로드하고 검증한다.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 는 설정 유효성을 검사한다.
// API 키가 없으면 서버를 기동하지 않는다.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.OpenAI.APIKey == "" {
		return errors.New(
			"OPENAI_API_KEY environment variable not set; " +
				"add OPENAI_API_KEY=<your key> to the environment or a .env file",
		)
	}
	if c.OpenAI.Model == "" {
		return errors.New("OPENAI_MODEL must not be empty")
	}
	return nil
}

// LogEnvStatus 는 환경 설정 상태를 로그로 남긴다.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	logger.Debug(
		"env_status",
		"env_file", fileExists(".env"),
		"api_key", maskSecret(cfg.OpenAI.APIKey),
		"model", cfg.OpenAI.Model,
		"temperature", cfg.OpenAI.Temperature,
		"max_tokens", cfg.OpenAI.MaxOutputTokens,
		"timeout", cfg.OpenAI.TimeoutSeconds,
	)
}

func buildConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			APIKey:          getEnvString("OPENAI_API_KEY", ""),
			Model:           getEnvString("OPENAI_MODEL", "gpt-3.5-turbo"),
			Temperature:     getEnvFloat("OPENAI_TEMPERATURE", 0.7),
			MaxOutputTokens: getEnvInt("OPENAI_MAX_TOKENS", 300),
			TimeoutSeconds:  max(1, getEnvInt("OPENAI_TIMEOUT", 60)),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "127.0.0.1"),
			Port:         getEnvInt("HTTP_PORT", 8080),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
	}
}
