package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/edwisely/concept-clarifier/internal/httperror"
)

// writeError: 에러를 단일 error 필드 JSON 응답으로 작성합니다.
func writeError(c *gin.Context, err error) {
	if c == nil {
		return
	}
	status, payload := httperror.Response(err)
	c.JSON(status, payload)
}

// logError: 에러를 경고 레벨로 로깅합니다.
func logError(logger *slog.Logger, domain string, err error) {
	if logger == nil || err == nil {
		return
	}
	logger.Warn(domain+"_error", "err", err)
}
