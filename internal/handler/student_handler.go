package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/service"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
	"github.com/edusuite/escolar-api/pkg/response"
)

type studentService interface {
	Search(ctx context.Context, term string) []models.StudentDetail
	Get(ctx context.Context, id string) (*models.StudentDetail, error)
	Enroll(ctx context.Context, req service.EnrollStudentRequest) (*models.Student, error)
	Withdraw(ctx context.Context, id string) error
}

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students studentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students, optionally filtered by a search term
// @Tags Students
// @Produce json
// @Param search query string false "Case-insensitive match on name or enrollment id"
// @Success 200 {object} response.Envelope
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))
	students := h.students.Search(c.Request.Context(), term)
	response.JSON(c, http.StatusOK, students, nil, map[string]interface{}{"count": len(students)})
}

// Get godoc
// @Summary Get student detail
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Enroll godoc
// @Summary Enroll a student into a group
// @Tags Students
// @Accept json
// @Produce json
// @Param payload body service.EnrollStudentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Router /students [post]
func (h *StudentHandler) Enroll(c *gin.Context) {
	var req service.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.students.Enroll(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Withdraw godoc
// @Summary Withdraw a student
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 204
// @Router /students/{id} [delete]
func (h *StudentHandler) Withdraw(c *gin.Context) {
	if err := h.students.Withdraw(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
