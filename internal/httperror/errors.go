package httperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeInvalidRequest 는 요청 오류 코드다.
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrorCodeUpstream 는 업스트림 호출 오류 코드다.
	ErrorCodeUpstream ErrorCode = "UPSTREAM_FAILURE"
	// ErrorCodeUpstreamTimeout 는 업스트림 타임아웃 코드다.
	ErrorCodeUpstreamTimeout ErrorCode = "UPSTREAM_TIMEOUT"
)

// ErrorResponse 는 API 오류 응답 본문이다.
// 클라이언트 계약상 단일 error 필드만 내려간다.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}
	return apiErr.Status, ErrorResponse{Error: apiErr.Message}
}

// FromError 는 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewInvalidRequest("Input validation failed.")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewUpstreamTimeout("Completion request timed out.")
	}

	return NewInternalError(err.Error())
}

// ClassifyUpstream 는 업스트림 호출 실패를 분류한다.
// 응답으로 내려가지는 않고 진단 로그에 쓰인다.
func ClassifyUpstream(err error) *Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewUpstreamTimeout("Completion request timed out.")
	}
	return NewUpstreamError(err.Error())
}

// NewInternalError 는 내부 오류를 생성한다.
func NewInternalError(message string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

// NewInvalidRequest 는 요청 오류를 생성한다.
func NewInvalidRequest(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidRequest,
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewUpstreamError 는 업스트림 호출 오류를 생성한다.
func NewUpstreamError(message string) *Error {
	return &Error{
		Code:    ErrorCodeUpstream,
		Status:  http.StatusBadGateway,
		Message: message,
	}
}

// NewUpstreamTimeout 는 업스트림 타임아웃 오류를 생성한다.
func NewUpstreamTimeout(message string) *Error {
	return &Error{
		Code:    ErrorCodeUpstreamTimeout,
		Status:  http.StatusGatewayTimeout,
		Message: message,
	}
}
