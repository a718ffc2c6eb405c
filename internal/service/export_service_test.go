package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/store"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type mockFileSaver struct {
	files map[string][]byte
	err   error
}

func (m *mockFileSaver) Save(filename string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.files == nil {
		m.files = make(map[string][]byte)
	}
	m.files[filename] = data
	return "/exports/" + filename, nil
}

func (m *mockFileSaver) Path(filename string) string {
	return "/exports/" + filename
}

func newExportFixture() (*ExportService, *store.Store, *mockFileSaver) {
	st := store.New()
	st.Seed()
	saver := &mockFileSaver{}
	svc := NewExportService(st, saver, zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	return svc, st, saver
}

func TestExportRosterCSV(t *testing.T) {
	svc, _, saver := newExportFixture()

	result, err := svc.Roster(context.Background(), "g1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.Filename, "roster_g1_")
	assert.Greater(t, result.Size, 0)

	data, ok := saver.files[result.Filename]
	require.True(t, ok)
	assert.Contains(t, string(data), "Matrícula,Nombre,Correo,Estado")
	assert.Contains(t, string(data), "Ana Martínez")
}

func TestExportRosterDefaultsToCSV(t *testing.T) {
	svc, _, _ := newExportFixture()

	result, err := svc.Roster(context.Background(), "g1", "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
}

func TestExportRosterPDF(t *testing.T) {
	svc, _, saver := newExportFixture()

	result, err := svc.Roster(context.Background(), "g1", "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)

	data := saver.files[result.Filename]
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportRosterUnknownGroup(t *testing.T) {
	svc, _, _ := newExportFixture()

	_, err := svc.Roster(context.Background(), "g99", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestExportRosterRejectsUnknownFormat(t *testing.T) {
	svc, _, _ := newExportFixture()

	_, err := svc.Roster(context.Background(), "g1", "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportRollCallSheetMarksPresence(t *testing.T) {
	svc, st, saver := newExportFixture()
	st.ToggleAttendance(models.AttendanceRecord{Date: "2026-08-31", StudentID: "st1", GroupID: "g1"})

	result, err := svc.RollCallSheet(context.Background(), "g1", "2026-08-31", "csv")
	require.NoError(t, err)

	data := string(saver.files[result.Filename])
	assert.Contains(t, data, "Matrícula,Nombre,Asistencia")
	assert.Contains(t, data, "Presente")
}

func TestExportRollCallSheetValidatesDate(t *testing.T) {
	svc, _, _ := newExportFixture()

	_, err := svc.RollCallSheet(context.Background(), "g1", "31-08-2026", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestExportStorageFailure(t *testing.T) {
	st := store.New()
	st.Seed()
	svc := NewExportService(st, &mockFileSaver{err: assert.AnError}, zap.NewNop())

	_, err := svc.Roster(context.Background(), "g1", "csv")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}
