package store

import (
	"strings"
	"sync"

	"github.com/edusuite/escolar-api/internal/models"
)

// Store is the in-memory owner of every entity collection. Collections
// are held by value and handed out as copies, so no caller can alias
// store-owned state. Insertion order is preserved for display.
//
// All access is serialized by a single RWMutex; the toggle operation is
// atomic within one critical section so the one-record-per-(student, day)
// invariant holds even with concurrent requests in flight.
type Store struct {
	mu         sync.RWMutex
	sections   []models.Section
	groups     []models.Group
	teachers   []models.Teacher
	students   []models.Student
	attendance []models.AttendanceRecord
	revision   uint64
}

// New returns an empty store. Call Seed or ReplaceStudents afterwards.
func New() *Store {
	return &Store{}
}

// Revision increments on every mutation. Cached derived views key on it.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// ---- Sections ----

// Sections returns all sections in insertion order.
func (s *Store) Sections() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Section, len(s.sections))
	copy(out, s.sections)
	return out
}

// FindSection looks a section up by id.
func (s *Store) FindSection(id string) (models.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return models.Section{}, false
}

// InsertSection appends a section.
func (s *Store) InsertSection(sec models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = append(s.sections, sec)
	s.revision++
}

// RemoveSection deletes a section by id. Groups and students referencing
// it are deliberately left alone; queries resolve the dangling reference
// to a nil section instead of failing.
func (s *Store) RemoveSection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sec := range s.sections {
		if sec.ID == id {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			s.revision++
			return true
		}
	}
	return false
}

// ---- Groups ----

// Groups returns all groups in insertion order.
func (s *Store) Groups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Group, len(s.groups))
	copy(out, s.groups)
	return out
}

// FindGroup looks a group up by id.
func (s *Store) FindGroup(id string) (models.Group, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.Group{}, false
}

// GroupsInSection filters groups by section id.
func (s *Store) GroupsInSection(sectionID string) []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Group, 0)
	for _, g := range s.groups {
		if g.SectionID == sectionID {
			out = append(out, g)
		}
	}
	return out
}

// SetGroups installs the group collection. Groups are read-only after
// initial load.
func (s *Store) SetGroups(groups []models.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = make([]models.Group, len(groups))
	copy(s.groups, groups)
	s.revision++
}

// ---- Teachers ----

// Teachers returns the read-only teacher roster.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, len(s.teachers))
	copy(out, s.teachers)
	return out
}

// SetTeachers installs the teacher roster.
func (s *Store) SetTeachers(teachers []models.Teacher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teachers = make([]models.Teacher, len(teachers))
	copy(s.teachers, teachers)
	s.revision++
}

// ---- Students ----

// Students returns all students in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// FindStudent looks a student up by id.
func (s *Store) FindStudent(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// SearchStudents matches the term case-insensitively against name and
// enrollment id. An empty term matches everyone. Result order is store
// insertion order.
func (s *Store) SearchStudents(term string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]models.Student, 0, len(s.students))
	for _, st := range s.students {
		if needle == "" ||
			strings.Contains(strings.ToLower(st.Name), needle) ||
			strings.Contains(strings.ToLower(st.EnrollmentID), needle) {
			out = append(out, st)
		}
	}
	return out
}

// StudentsInGroup filters students by group id, preserving order.
func (s *Store) StudentsInGroup(groupID string) []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, 0)
	for _, st := range s.students {
		if st.GroupID == groupID {
			out = append(out, st)
		}
	}
	return out
}

// InsertStudent appends a student.
func (s *Store) InsertStudent(st models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, st)
	s.revision++
}

// RemoveStudent hard-deletes a student and cascade-deletes every
// attendance record referencing them, so no orphaned records survive a
// withdrawal. Returns false when no student has that id.
func (s *Store) RemoveStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			kept := s.attendance[:0]
			for _, rec := range s.attendance {
				if rec.StudentID != id {
					kept = append(kept, rec)
				}
			}
			s.attendance = kept
			s.revision++
			return true
		}
	}
	return false
}

// ReplaceStudents installs a restored roster, e.g. from a persisted
// snapshot at startup.
func (s *Store) ReplaceStudents(students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = make([]models.Student, len(students))
	copy(s.students, students)
	s.revision++
}

// ---- Attendance ----

// ToggleAttendance flips the attendance state for the record's
// (student, date) key in one critical section. When no record exists
// the provided record is appended and true is returned; otherwise the
// existing record is deleted and false is returned. The record's id,
// group and recorder are only used on the create path.
func (s *Store) ToggleAttendance(rec models.AttendanceRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.attendance {
		if existing.StudentID == rec.StudentID && existing.Date == rec.Date {
			s.attendance = append(s.attendance[:i], s.attendance[i+1:]...)
			s.revision++
			return false
		}
	}
	s.attendance = append(s.attendance, rec)
	s.revision++
	return true
}

// FindAttendance returns the record for a (student, date) key if any.
func (s *Store) FindAttendance(studentID, date string) (models.AttendanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.attendance {
		if rec.StudentID == studentID && rec.Date == date {
			return rec, true
		}
	}
	return models.AttendanceRecord{}, false
}

// AttendanceRecords returns every record in insertion order.
func (s *Store) AttendanceRecords() []models.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AttendanceRecord, len(s.attendance))
	copy(out, s.attendance)
	return out
}

// CountAttendance counts records matching (group, date).
func (s *Store) CountAttendance(groupID, date string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, rec := range s.attendance {
		if rec.GroupID == groupID && rec.Date == date {
			n++
		}
	}
	return n
}

// Counts reports collection sizes for the dashboard.
func (s *Store) Counts() (students, sections, groups, teachers, attendance int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.students), len(s.sections), len(s.groups), len(s.teachers), len(s.attendance)
}
