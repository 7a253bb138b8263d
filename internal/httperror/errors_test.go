package httperror

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestResponseFromAPIError(t *testing.T) {
	status, payload := Response(NewInvalidRequest("Concept query is required."))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if payload.Error != "Concept query is required." {
		t.Fatalf("unexpected error message: %s", payload.Error)
	}
}

func TestResponseFromPlainError(t *testing.T) {
	status, payload := Response(errors.New("boom"))
	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if payload.Error != "boom" {
		t.Fatalf("unexpected error message: %s", payload.Error)
	}
}

func TestFromErrorWrapped(t *testing.T) {
	inner := NewInvalidRequest("bad input")
	wrapped := errors.Join(errors.New("outer"), inner)
	apiErr := FromError(wrapped)
	if apiErr.Code != ErrorCodeInvalidRequest {
		t.Fatalf("expected invalid request code, got %s", apiErr.Code)
	}
}

func TestFromErrorNil(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}

func TestClassifyUpstream(t *testing.T) {
	apiErr := ClassifyUpstream(context.DeadlineExceeded)
	if apiErr.Code != ErrorCodeUpstreamTimeout {
		t.Fatalf("expected timeout code, got %s", apiErr.Code)
	}

	apiErr = ClassifyUpstream(errors.New("connection refused"))
	if apiErr.Code != ErrorCodeUpstream {
		t.Fatalf("expected upstream code, got %s", apiErr.Code)
	}

	if ClassifyUpstream(nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
