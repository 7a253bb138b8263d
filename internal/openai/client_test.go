package openai

import (
	"testing"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/metrics"
)

func testConfig(key string) *config.Config {
	return &config.Config{
		OpenAI: config.OpenAIConfig{
			APIKey:          key,
			Model:           "gpt-3.5-turbo",
			Temperature:     0.7,
			MaxOutputTokens: 300,
			TimeoutSeconds:  5,
		},
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(testConfig(""), metrics.NewStore()); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestNewClientRequiresDependencies(t *testing.T) {
	if _, err := NewClient(nil, metrics.NewStore()); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewClient(testConfig("sk-test"), nil); err == nil {
		t.Fatalf("expected error for nil metrics store")
	}
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testConfig("sk-test"), metrics.NewStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.api == nil {
		t.Fatalf("expected api client to be constructed")
	}
}

func TestBuildMessages(t *testing.T) {
	messages := buildMessages(Request{SystemPrompt: "You are a tutor.", Prompt: "Explain Mutex."})
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != goopenai.ChatMessageRoleSystem || messages[0].Content != "You are a tutor." {
		t.Fatalf("unexpected system message: %+v", messages[0])
	}
	if messages[1].Role != goopenai.ChatMessageRoleUser || messages[1].Content != "Explain Mutex." {
		t.Fatalf("unexpected user message: %+v", messages[1])
	}
}

func TestBuildMessagesWithoutSystem(t *testing.T) {
	messages := buildMessages(Request{Prompt: "Explain Mutex."})
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Role != goopenai.ChatMessageRoleUser {
		t.Fatalf("expected user role, got %s", messages[0].Role)
	}
}

func TestExtractUsage(t *testing.T) {
	response := goopenai.ChatCompletionResponse{
		Usage: goopenai.Usage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	}
	usage := extractUsage(response)
	if usage.InputTokens != 10 || usage.OutputTokens != 20 || usage.TotalTokens != 30 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}
