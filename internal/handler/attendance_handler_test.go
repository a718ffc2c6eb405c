package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/service"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type attendanceServiceMock struct {
	captured   service.ToggleRequest
	recordedBy string
	result     *service.ToggleResult
	err        error
	entries    []models.RollCallEntry
}

func (m *attendanceServiceMock) Toggle(_ context.Context, req service.ToggleRequest, recordedBy string) (*service.ToggleResult, error) {
	m.captured = req
	m.recordedBy = recordedBy
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *attendanceServiceMock) PresentCount(context.Context, string, string) (int, string, error) {
	if m.err != nil {
		return 0, "", m.err
	}
	return 2, "2026-08-31", nil
}

func (m *attendanceServiceMock) RollCall(context.Context, string) ([]models.RollCallEntry, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.entries, "2026-08-31", nil
}

func TestAttendanceHandlerToggle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{result: &service.ToggleResult{State: models.TogglePresent, Date: "2026-08-31"}}
	handler := NewAttendanceHandler(mockSvc)

	payload := []byte(`{"student_id":"st1","group_id":"g1"}`)
	req, _ := http.NewRequest(http.MethodPost, "/attendance/toggle", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Toggle(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "st1", mockSvc.captured.StudentID)
	assert.Equal(t, "g1", mockSvc.captured.GroupID)
	assert.Equal(t, "Admin", mockSvc.recordedBy, "falls back to the default actor when no header context is set")
	assert.Contains(t, w.Body.String(), `"state":"present"`)
}

func TestAttendanceHandlerTogglePassesActingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{result: &service.ToggleResult{State: models.ToggleAbsent, Date: "2026-08-31"}}
	handler := NewAttendanceHandler(mockSvc)

	payload := []byte(`{"student_id":"st1","group_id":"g1"}`)
	req, _ := http.NewRequest(http.MethodPost, "/attendance/toggle", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Set("acting_user", "Miss Elena")

	handler.Toggle(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Miss Elena", mockSvc.recordedBy)
}

func TestAttendanceHandlerToggleMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAttendanceHandler(&attendanceServiceMock{})

	req, _ := http.NewRequest(http.MethodPost, "/attendance/toggle", bytes.NewReader([]byte(`{"student_id":`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Toggle(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandlerToggleNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")}
	handler := NewAttendanceHandler(mockSvc)

	payload := []byte(`{"student_id":"nope","group_id":"g1"}`)
	req, _ := http.NewRequest(http.MethodPost, "/attendance/toggle", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Toggle(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAttendanceHandlerPresentCount(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAttendanceHandler(&attendanceServiceMock{})

	req, _ := http.NewRequest(http.MethodGet, "/groups/g1/attendance/count", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "g1"}}

	handler.PresentCount(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"present":2`)
	assert.Contains(t, w.Body.String(), `"date":"2026-08-31"`)
}

func TestAttendanceHandlerRollCall(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{entries: []models.RollCallEntry{
		{Student: models.Student{ID: "st1", Name: "Ana Martínez"}, Present: true},
	}}
	handler := NewAttendanceHandler(mockSvc)

	req, _ := http.NewRequest(http.MethodGet, "/groups/g1/rollcall", nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "g1"}}

	handler.RollCall(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"present":true`)
	assert.Contains(t, w.Body.String(), "Ana Martínez")
}
