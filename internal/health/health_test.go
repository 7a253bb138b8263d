package health

import (
	"testing"

	"github.com/edwisely/concept-clarifier/internal/config"
)

func TestCollectDegradedWithoutKey(t *testing.T) {
	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "", Model: "gpt-3.5-turbo"}}

	resp := Collect(cfg)
	if resp.Status != "degraded" {
		t.Fatalf("expected degraded status, got %s", resp.Status)
	}
	if resp.Components["completion"].Status != "degraded" {
		t.Fatalf("expected degraded completion component")
	}
	if resp.Components["app"].Status != "ok" {
		t.Fatalf("expected app ok")
	}
}

func TestCollectOKWithKey(t *testing.T) {
	cfg := &config.Config{OpenAI: config.OpenAIConfig{APIKey: "sk-test", Model: "gpt-3.5-turbo"}}

	resp := Collect(cfg)
	if resp.Status != "ok" {
		t.Fatalf("expected ok status, got %s", resp.Status)
	}
	detail := resp.Components["completion"].Detail
	if detail["model"] != "gpt-3.5-turbo" {
		t.Fatalf("unexpected model detail: %v", detail["model"])
	}
}
