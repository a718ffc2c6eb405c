package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/service"
	"github.com/edusuite/escolar-api/pkg/response"
)

// DashboardHandler serves the aggregated overview counters.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview godoc
// @Summary Dashboard overview counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/overview [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, cached := h.dashboard.Overview(c.Request.Context())
	response.JSON(c, http.StatusOK, overview, nil, map[string]interface{}{"cached": cached})
}
