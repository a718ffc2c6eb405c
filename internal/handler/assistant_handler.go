package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/service"
	"github.com/edusuite/escolar-api/pkg/response"
)

type assistantService interface {
	AttendanceSummary(ctx context.Context) (*service.SummaryResponse, bool)
}

// AssistantHandler serves generated attendance summaries.
type AssistantHandler struct {
	assistant assistantService
}

// NewAssistantHandler constructs AssistantHandler.
func NewAssistantHandler(assistant assistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Summary godoc
// @Summary Generate an attendance summary
// @Description Produces a short narrative analysis of today's attendance. Falls back to a static message when the text generator is unavailable.
// @Tags Assistant
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /assistant/summary [get]
func (h *AssistantHandler) Summary(c *gin.Context) {
	summary, cached := h.assistant.AttendanceSummary(c.Request.Context())
	response.JSON(c, http.StatusOK, summary, nil, map[string]interface{}{"cached": cached})
}
