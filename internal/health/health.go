package health

import (
	"time"

	"github.com/edwisely/concept-clarifier/internal/config"
)

var startTime = time.Now()

// Component 는 상태 구성 요소다.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response 는 상태 응답 본문이다.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Collect 는 헬스 상태를 수집한다.
// 완성 API는 호출하지 않고 설정 기반으로만 판정한다.
func Collect(cfg *config.Config) Response {
	components := map[string]Component{
		"app":        buildAppStatus(),
		"completion": buildCompletionStatus(cfg),
	}

	overall := "ok"
	for _, component := range components {
		if component.Status != "ok" {
			overall = "degraded"
			break
		}
	}

	return Response{
		Status:     overall,
		Components: components,
	}
}

func buildAppStatus() Component {
	return Component{
		Status: "ok",
		Detail: map[string]any{
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		},
	}
}

func buildCompletionStatus(cfg *config.Config) Component {
	if cfg == nil || cfg.OpenAI.APIKey == "" {
		return Component{
			Status: "degraded",
			Detail: map[string]any{"api_key_configured": false},
		}
	}
	return Component{
		Status: "ok",
		Detail: map[string]any{
			"api_key_configured": true,
			"model":              cfg.OpenAI.Model,
		},
	}
}
