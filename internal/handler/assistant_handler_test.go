package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/escolar-api/internal/service"
)

type assistantServiceMock struct {
	resp   *service.SummaryResponse
	cached bool
}

func (m *assistantServiceMock) AttendanceSummary(context.Context) (*service.SummaryResponse, bool) {
	return m.resp, m.cached
}

func TestAssistantHandlerSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &assistantServiceMock{resp: &service.SummaryResponse{
		Summary:     "La asistencia es estable.",
		GeneratedAt: time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}}
	handler := NewAssistantHandler(mockSvc)

	req, _ := http.NewRequest(http.MethodGet, "/assistant/summary", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Summary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "La asistencia es estable.")
	assert.Contains(t, w.Body.String(), `"cached":false`)
}

func TestAssistantHandlerSummaryFallbackIsStillOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &assistantServiceMock{resp: &service.SummaryResponse{
		Summary:  service.FallbackSummary,
		Fallback: true,
	}}
	handler := NewAssistantHandler(mockSvc)

	req, _ := http.NewRequest(http.MethodGet, "/assistant/summary", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Summary(c)

	require.Equal(t, http.StatusOK, w.Code, "generation failures never surface as HTTP errors")
	assert.Contains(t, w.Body.String(), service.FallbackSummary)
	assert.Contains(t, w.Body.String(), `"fallback":true`)
}
