package config

// OpenAIConfig: 완성(completion) API 호출 설정입니다.
type OpenAIConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	OpenAI  OpenAIConfig
	Logging LoggingConfig
	HTTP    HTTPConfig
}
