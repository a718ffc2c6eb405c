package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/middleware"
	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/service"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
	"github.com/edusuite/escolar-api/pkg/response"
)

type attendanceService interface {
	Toggle(ctx context.Context, req service.ToggleRequest, recordedBy string) (*service.ToggleResult, error)
	PresentCount(ctx context.Context, groupID, date string) (int, string, error)
	RollCall(ctx context.Context, groupID string) ([]models.RollCallEntry, string, error)
}

// AttendanceHandler exposes the roll-call endpoints.
type AttendanceHandler struct {
	attendance attendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance attendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// Toggle godoc
// @Summary Toggle today's attendance for a student
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body service.ToggleRequest true "Toggle payload"
// @Success 200 {object} response.Envelope
// @Router /attendance/toggle [post]
func (h *AttendanceHandler) Toggle(c *gin.Context) {
	var req service.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.attendance.Toggle(c.Request.Context(), req, middleware.ActorValue(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// PresentCount godoc
// @Summary Count present students for a group and day
// @Tags Attendance
// @Produce json
// @Param id path string true "Group ID"
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Envelope
// @Router /groups/{id}/attendance/count [get]
func (h *AttendanceHandler) PresentCount(c *gin.Context) {
	count, date, err := h.attendance.PresentCount(c.Request.Context(), c.Param("id"), c.Query("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"group_id": c.Param("id"), "date": date, "present": count}, nil)
}

// RollCall godoc
// @Summary List a group's students with today's presence
// @Tags Attendance
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /groups/{id}/rollcall [get]
func (h *AttendanceHandler) RollCall(c *gin.Context) {
	entries, date, err := h.attendance.RollCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil, map[string]interface{}{"date": date})
}
