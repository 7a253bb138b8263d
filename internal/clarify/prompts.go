package clarify

import (
	"embed"
	"fmt"

	"github.com/edwisely/concept-clarifier/internal/prompt"
)

//go:embed prompts/*.yml
var promptsFS embed.FS

// Prompts 는 개념 설명 프롬프트 모음이다.
type Prompts struct {
	data map[string]string
}

// NewPrompts 는 개념 설명 프롬프트를 로드한다.
func NewPrompts() (*Prompts, error) {
	loaded, err := prompt.LoadYAMLMapping(promptsFS, "prompts/clarify.yml")
	if err != nil {
		return nil, fmt.Errorf("load clarify prompts: %w", err)
	}
	return &Prompts{data: loaded}, nil
}

// System 은 고정 시스템 프롬프트를 반환한다.
func (p *Prompts) System() (string, error) {
	return prompt.Field(p.data, "system", "clarify.system")
}

// User 는 질의와 선택적 과목 컨텍스트로 유저 프롬프트를 만든다.
// context 가 비어 있으면 컨텍스트 절은 붙지 않는다.
func (p *Prompts) User(query string, context string) (string, error) {
	template, err := prompt.Field(p.data, "user", "clarify.user")
	if err != nil {
		return "", err
	}
	formatted, err := prompt.FormatTemplate(template, map[string]string{"query": query})
	if err != nil {
		return "", fmt.Errorf("format clarify.user: %w", err)
	}

	if context == "" {
		return formatted, nil
	}

	clauseTemplate, err := prompt.Field(p.data, "context_clause", "clarify.context_clause")
	if err != nil {
		return "", err
	}
	clause, err := prompt.FormatTemplate(clauseTemplate, map[string]string{"context": context})
	if err != nil {
		return "", fmt.Errorf("format clarify.context_clause: %w", err)
	}

	return formatted + clause, nil
}
