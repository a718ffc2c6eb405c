package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/service"
	"github.com/edusuite/escolar-api/pkg/response"
)

// ExportHandler streams generated roster and roll-call sheets.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs ExportHandler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Roster godoc
// @Summary Export a group roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Group ID"
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /groups/{id}/export/roster [get]
func (h *ExportHandler) Roster(c *gin.Context) {
	result, err := h.exports.Roster(c.Request.Context(), c.Param("id"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.serve(c, result)
}

// RollCall godoc
// @Summary Export a daily roll-call sheet
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Group ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Param format query string false "Export format" Enums(csv, pdf) default(csv)
// @Success 200 {file} binary
// @Failure 404 {object} response.Envelope
// @Router /groups/{id}/export/rollcall [get]
func (h *ExportHandler) RollCall(c *gin.Context) {
	result, err := h.exports.RollCallSheet(c.Request.Context(), c.Param("id"), c.Query("date"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	h.serve(c, result)
}

func (h *ExportHandler) serve(c *gin.Context, result *service.ExportResult) {
	file, err := os.Open(result.Path)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.DataFromReader(http.StatusOK, int64(result.Size), result.ContentType, file, nil)
}
