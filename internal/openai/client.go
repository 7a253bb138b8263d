package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/edwisely/concept-clarifier/internal/config"
	"github.com/edwisely/concept-clarifier/internal/llm"
	"github.com/edwisely/concept-clarifier/internal/metrics"
)

var (
	// ErrMissingAPIKey 는 OpenAI API 키가 없을 때 반환된다.
	ErrMissingAPIKey = errors.New("missing openai api key")
	// ErrEmptyCompletion 는 응답에 본문이 없을 때 반환된다.
	ErrEmptyCompletion = errors.New("empty completion response")
)

// Request 는 완성 요청 데이터다.
type Request struct {
	SystemPrompt string
	Prompt       string
}

// Client 는 OpenAI chat completion 호출을 담당한다.
type Client struct {
	cfg     *config.Config
	metrics *metrics.Store
	api     *goopenai.Client
}

// NewClient 는 OpenAI 클라이언트를 생성한다.
func NewClient(cfg *config.Config, metricsStore *metrics.Store) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	apiConfig := goopenai.DefaultConfig(cfg.OpenAI.APIKey)
	apiConfig.HTTPClient = &http.Client{
		Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
	}

	return &Client{
		cfg:     cfg,
		metrics: metricsStore,
		api:     goopenai.NewClientWithConfig(apiConfig),
	}, nil
}

// Complete 는 chat completion 요청을 한 번 수행하고 생성 텍스트를 반환한다.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	response, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.cfg.OpenAI.Model,
		Temperature: float32(c.cfg.OpenAI.Temperature),
		MaxTokens:   c.cfg.OpenAI.MaxOutputTokens,
		Messages:    buildMessages(req),
	})
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		c.metrics.RecordError(time.Since(start))
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(response.Choices[0].Message.Content)
	if text == "" {
		c.metrics.RecordError(time.Since(start))
		return "", ErrEmptyCompletion
	}

	c.metrics.RecordSuccess(time.Since(start), extractUsage(response))
	return text, nil
}

func buildMessages(req Request) []goopenai.ChatCompletionMessage {
	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(req.SystemPrompt) != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    goopenai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{
		Role:    goopenai.ChatMessageRoleUser,
		Content: req.Prompt,
	})
	return messages
}

func extractUsage(response goopenai.ChatCompletionResponse) llm.Usage {
	return llm.Usage{
		InputTokens:  response.Usage.PromptTokens,
		OutputTokens: response.Usage.CompletionTokens,
		TotalTokens:  response.Usage.TotalTokens,
	}
}
