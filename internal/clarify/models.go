package clarify

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Request 는 개념 설명 요청이다.
type Request struct {
	Query   string
	Context string
}

// Normalized 는 입력 필드를 NFC 정규화하고 앞뒤 공백을 제거한다.
func (r Request) Normalized() Request {
	return Request{
		Query:   normalizeText(r.Query),
		Context: normalizeText(r.Context),
	}
}

func normalizeText(value string) string {
	return strings.TrimSpace(norm.NFC.String(value))
}
