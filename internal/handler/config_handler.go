package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/service"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
	"github.com/edusuite/escolar-api/pkg/response"
)

type configService interface {
	Get(ctx context.Context) models.SchoolConfig
	Theme(ctx context.Context) models.ThemePalette
	Update(ctx context.Context, req service.UpdateConfigRequest) (*models.SchoolConfig, error)
}

// ConfigHandler exposes the school branding configuration.
type ConfigHandler struct {
	config configService
}

// NewConfigHandler constructs ConfigHandler.
func NewConfigHandler(config configService) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// Get godoc
// @Summary Get school configuration
// @Tags Config
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /config [get]
func (h *ConfigHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.config.Get(c.Request.Context()), nil)
}

// Theme godoc
// @Summary Get the resolved theme palette
// @Tags Config
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /config/theme [get]
func (h *ConfigHandler) Theme(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.config.Theme(c.Request.Context()), nil)
}

// Update godoc
// @Summary Update school configuration
// @Tags Config
// @Accept json
// @Produce json
// @Param request body service.UpdateConfigRequest true "New configuration"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /config [put]
func (h *ConfigHandler) Update(c *gin.Context) {
	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	cfg, err := h.config.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}
