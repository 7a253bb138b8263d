package clarify

import (
	"context"
	"errors"
	"log/slog"

	"github.com/edwisely/concept-clarifier/internal/httperror"
	"github.com/edwisely/concept-clarifier/internal/openai"
)

// FallbackMessage 는 업스트림 실패 시 사용자에게 내려가는 고정 대체 메시지다.
const FallbackMessage = "I apologize, but I couldn't generate an explanation at this moment. Please try again later."

// ErrEmptyQuery 는 개념 질의가 비어 있을 때 반환된다.
var ErrEmptyQuery = errors.New("empty concept query")

// Service 는 개념 설명 릴레이다.
// 요청 검증, 프롬프트 구성, 완성 API 호출, 결과 매핑을 담당한다.
type Service struct {
	completer openai.Completer
	prompts   *Prompts
	logger    *slog.Logger
}

// NewService 는 개념 설명 서비스를 생성한다.
func NewService(completer openai.Completer, prompts *Prompts, logger *slog.Logger) (*Service, error) {
	if completer == nil {
		return nil, errors.New("completer is nil")
	}
	if prompts == nil {
		return nil, errors.New("prompts is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{completer: completer, prompts: prompts, logger: logger}, nil
}

// Explain 은 개념 질의에 대한 설명을 생성한다.
// 업스트림 호출이 실패하면 실패를 로그로 남기고 FallbackMessage 를 반환한다.
// 빈 질의만 오류로 반환되며 그 경우 업스트림 호출은 일어나지 않는다.
func (s *Service) Explain(ctx context.Context, req Request) (string, error) {
	normalized := req.Normalized()
	if normalized.Query == "" {
		return "", ErrEmptyQuery
	}

	system, err := s.prompts.System()
	if err != nil {
		s.logger.Error("clarify_prompt_failed", "err", err)
		return FallbackMessage, nil
	}
	user, err := s.prompts.User(normalized.Query, normalized.Context)
	if err != nil {
		s.logger.Error("clarify_prompt_failed", "err", err)
		return FallbackMessage, nil
	}

	explanation, err := s.completer.Complete(ctx, openai.Request{
		SystemPrompt: system,
		Prompt:       user,
	})
	if err != nil {
		apiErr := httperror.ClassifyUpstream(err)
		s.logger.Error("clarify_upstream_failed", "code", apiErr.Code, "err", err)
		return FallbackMessage, nil
	}

	return explanation, nil
}
