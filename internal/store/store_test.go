package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusuite/escolar-api/internal/models"
)

func seededStore() *Store {
	s := New()
	s.Seed()
	return s
}

func TestSeedInstallsDataset(t *testing.T) {
	s := seededStore()

	students, sections, groups, teachers, attendance := s.Counts()
	assert.Equal(t, 3, students)
	assert.Equal(t, 4, sections)
	assert.Equal(t, 3, groups)
	assert.Equal(t, 4, teachers)
	assert.Equal(t, 0, attendance)
}

func TestSearchStudentsMatchesNameAndEnrollmentID(t *testing.T) {
	s := seededStore()

	byName := s.SearchStudents("ana")
	require.Len(t, byName, 1)
	assert.Equal(t, "Ana Martínez", byName[0].Name)

	byEnrollment := s.SearchStudents("p-002")
	require.Len(t, byEnrollment, 1)
	assert.Equal(t, "Juan Pérez", byEnrollment[0].Name)

	assert.Len(t, s.SearchStudents(""), 3)
	assert.Empty(t, s.SearchStudents("zzz"))
}

func TestSearchStudentsPreservesInsertionOrder(t *testing.T) {
	s := seededStore()
	s.InsertStudent(models.Student{ID: "st9", Name: "Ana Torres", EnrollmentID: "X-009", GroupID: "g1"})

	matches := s.SearchStudents("ana")
	require.Len(t, matches, 2)
	assert.Equal(t, "st1", matches[0].ID)
	assert.Equal(t, "st9", matches[1].ID)
}

func TestToggleAttendanceFlipsState(t *testing.T) {
	s := seededStore()
	rec := models.AttendanceRecord{ID: "a1", Date: "2026-08-31", GroupID: "g1", StudentID: "st1", Status: models.AttendanceStatusPresent}

	assert.True(t, s.ToggleAttendance(rec))
	_, present := s.FindAttendance("st1", "2026-08-31")
	assert.True(t, present)

	assert.False(t, s.ToggleAttendance(rec))
	_, present = s.FindAttendance("st1", "2026-08-31")
	assert.False(t, present)
}

func TestToggleAttendanceKeepsOneRecordPerStudentAndDay(t *testing.T) {
	s := seededStore()
	rec := models.AttendanceRecord{Date: "2026-08-31", GroupID: "g1", StudentID: "st1"}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleAttendance(rec)
		}()
	}
	wg.Wait()

	// An even number of toggles always lands on the baseline.
	assert.Empty(t, s.AttendanceRecords())
}

func TestToggleAttendanceSeparateDaysAreIndependent(t *testing.T) {
	s := seededStore()

	s.ToggleAttendance(models.AttendanceRecord{Date: "2026-08-30", StudentID: "st1", GroupID: "g1"})
	s.ToggleAttendance(models.AttendanceRecord{Date: "2026-08-31", StudentID: "st1", GroupID: "g1"})

	assert.Len(t, s.AttendanceRecords(), 2)
	assert.Equal(t, 1, s.CountAttendance("g1", "2026-08-31"))
}

func TestRemoveStudentCascadesAttendance(t *testing.T) {
	s := seededStore()
	s.ToggleAttendance(models.AttendanceRecord{Date: "2026-08-31", StudentID: "st1", GroupID: "g1"})
	s.ToggleAttendance(models.AttendanceRecord{Date: "2026-08-31", StudentID: "st2", GroupID: "g2"})

	require.True(t, s.RemoveStudent("st1"))

	records := s.AttendanceRecords()
	require.Len(t, records, 1)
	assert.Equal(t, "st2", records[0].StudentID)
}

func TestRemoveStudentUnknownIDLeavesStoreUntouched(t *testing.T) {
	s := seededStore()
	before := s.Revision()

	assert.False(t, s.RemoveStudent("nope"))
	assert.Equal(t, before, s.Revision())
	assert.Len(t, s.Students(), 3)
}

func TestRemoveSectionLeavesGroupsAlone(t *testing.T) {
	s := seededStore()

	require.True(t, s.RemoveSection("sec_kin"))
	assert.False(t, s.RemoveSection("sec_kin"))

	// g1 still references the removed section.
	g, ok := s.FindGroup("g1")
	require.True(t, ok)
	assert.Equal(t, "sec_kin", g.SectionID)
	assert.Empty(t, s.GroupsInSection("missing"))
}

func TestRevisionIncrementsOnMutation(t *testing.T) {
	s := seededStore()
	before := s.Revision()

	s.InsertStudent(models.Student{ID: "st9", Name: "Nuevo", GroupID: "g1"})
	assert.Greater(t, s.Revision(), before)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := seededStore()

	students := s.Students()
	students[0].Name = "mutated"

	fresh, ok := s.FindStudent(students[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}
