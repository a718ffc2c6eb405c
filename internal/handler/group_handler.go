package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusuite/escolar-api/internal/service"
	"github.com/edusuite/escolar-api/pkg/response"
)

// GroupHandler exposes the read-only group roster.
type GroupHandler struct {
	groups   *service.GroupService
	students *service.StudentService
}

// NewGroupHandler constructs GroupHandler.
func NewGroupHandler(groups *service.GroupService, students *service.StudentService) *GroupHandler {
	return &GroupHandler{groups: groups, students: students}
}

// List godoc
// @Summary List groups
// @Tags Groups
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /groups [get]
func (h *GroupHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.groups.List(c.Request.Context()), nil)
}

// Get godoc
// @Summary Get group detail
// @Tags Groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /groups/{id} [get]
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.groups.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, group, nil)
}

// Students godoc
// @Summary List students of a group
// @Tags Groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /groups/{id}/students [get]
func (h *GroupHandler) Students(c *gin.Context) {
	students, err := h.students.InGroup(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}
