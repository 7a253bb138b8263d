package openai

import "context"

// Completer 는 완성 서비스 클라이언트 인터페이스다.
// 테스트에서 mock 구현을 주입할 수 있도록 한다.
type Completer interface {
	// Complete 프롬프트에 대한 생성 텍스트 반환
	Complete(ctx context.Context, req Request) (string, error)
}

// Client가 Completer 인터페이스를 구현하는지 컴파일 타임 확인
var _ Completer = (*Client)(nil)
