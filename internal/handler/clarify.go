package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/edwisely/concept-clarifier/internal/clarify"
	"github.com/edwisely/concept-clarifier/internal/httperror"
)

// MsgQueryRequired 는 질의 누락 시 클라이언트에 내려가는 고정 메시지다.
const MsgQueryRequired = "Concept query is required."

// ClarifyRequest 는 /clarify 요청 본문이다.
type ClarifyRequest struct {
	Query   string `json:"query" binding:"required"`
	Context string `json:"context"`
}

// ClarifyResponse 는 /clarify 응답 본문이다.
type ClarifyResponse struct {
	Explanation string `json:"explanation"`
}

// ClarifyHandler 는 개념 설명 API 핸들러다.
type ClarifyHandler struct {
	service *clarify.Service
	logger  *slog.Logger
}

// NewClarifyHandler 는 개념 설명 핸들러를 생성한다.
func NewClarifyHandler(service *clarify.Service, logger *slog.Logger) *ClarifyHandler {
	return &ClarifyHandler{service: service, logger: logger}
}

// RegisterRoutes 는 개념 설명 라우트를 등록한다.
func (h *ClarifyHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.handleIndex)
	router.POST("/clarify", h.handleClarify)
}

func (h *ClarifyHandler) handleClarify(c *gin.Context) {
	var req ClarifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			// query 필드 누락/빈 값
			writeError(c, httperror.NewInvalidRequest(MsgQueryRequired))
			return
		}
		writeError(c, httperror.NewInvalidRequest("Request body must be valid JSON."))
		return
	}

	explanation, err := h.service.Explain(c.Request.Context(), clarify.Request{
		Query:   req.Query,
		Context: req.Context,
	})
	if err != nil {
		if errors.Is(err, clarify.ErrEmptyQuery) {
			writeError(c, httperror.NewInvalidRequest(MsgQueryRequired))
			return
		}
		logError(h.logger, "clarify", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClarifyResponse{Explanation: explanation})
}
