package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/store"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type mockPersister struct {
	calls int
	err   error
}

func (m *mockPersister) PersistState(context.Context) error {
	m.calls++
	return m.err
}

func newStudentFixture() (*StudentService, *store.Store, *mockPersister) {
	st := store.New()
	st.Seed()
	persister := &mockPersister{}
	svc := NewStudentService(st, persister, validator.New(), zap.NewNop())
	return svc, st, persister
}

func TestStudentServiceEnroll(t *testing.T) {
	svc, st, persister := newStudentFixture()

	student, err := svc.Enroll(context.Background(), EnrollStudentRequest{
		Name:         "Ana López",
		EnrollmentID: "K-010",
		GroupID:      "g1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, student.ID)
	assert.Equal(t, "g1", student.GroupID)
	assert.Equal(t, "sec_kin", student.SectionID, "section must come from the resolved group")
	assert.Equal(t, 0, student.AttendanceCount)
	assert.Equal(t, 1, persister.calls)

	matches := svc.Search(context.Background(), "K-010")
	require.Len(t, matches, 1)
	assert.Equal(t, student.ID, matches[0].ID)
	assert.Len(t, st.Students(), 4)
}

func TestStudentServiceEnrollEmptyName(t *testing.T) {
	svc, st, persister := newStudentFixture()

	_, err := svc.Enroll(context.Background(), EnrollStudentRequest{
		EnrollmentID: "K-010",
		GroupID:      "g1",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Len(t, st.Students(), 3)
	assert.Zero(t, persister.calls)
}

func TestStudentServiceEnrollUnknownGroup(t *testing.T) {
	svc, st, _ := newStudentFixture()

	_, err := svc.Enroll(context.Background(), EnrollStudentRequest{
		Name:         "Ana López",
		EnrollmentID: "K-010",
		GroupID:      "g99",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Len(t, st.Students(), 3)
}

func TestStudentServiceSearchMatchesNameCaseInsensitively(t *testing.T) {
	svc, _, _ := newStudentFixture()

	matches := svc.Search(context.Background(), "ANA")
	require.Len(t, matches, 1)
	assert.Equal(t, "Ana Martínez", matches[0].Name)
	require.NotNil(t, matches[0].GroupName)
	assert.Equal(t, "3º Kinder - A", *matches[0].GroupName)
	require.NotNil(t, matches[0].SectionName)
	assert.Equal(t, "Kinder", *matches[0].SectionName)
}

func TestStudentServiceSearchEmptyTermReturnsEveryone(t *testing.T) {
	svc, _, _ := newStudentFixture()

	assert.Len(t, svc.Search(context.Background(), ""), 3)
	assert.Empty(t, svc.Search(context.Background(), "nomatch"))
}

func TestStudentServiceWithdraw(t *testing.T) {
	svc, st, persister := newStudentFixture()

	require.NoError(t, svc.Withdraw(context.Background(), "st1"))
	assert.Len(t, st.Students(), 2)
	assert.Equal(t, 1, persister.calls)

	// Second withdrawal of the same id fails and changes nothing.
	err := svc.Withdraw(context.Background(), "st1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.Len(t, st.Students(), 2)
	assert.Equal(t, 1, persister.calls)
}

func TestStudentServiceInGroup(t *testing.T) {
	svc, _, _ := newStudentFixture()

	students, err := svc.InGroup(context.Background(), "g1")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "st1", students[0].ID)

	_, err = svc.InGroup(context.Background(), "g99")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServiceGetUnknown(t *testing.T) {
	svc, _, _ := newStudentFixture()

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestStudentServicePersistFailureIsSwallowed(t *testing.T) {
	st := store.New()
	st.Seed()
	persister := &mockPersister{err: assert.AnError}
	svc := NewStudentService(st, persister, validator.New(), zap.NewNop())

	_, err := svc.Enroll(context.Background(), EnrollStudentRequest{
		Name:         "Ana López",
		EnrollmentID: "K-010",
		GroupID:      "g1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, persister.calls)
}
