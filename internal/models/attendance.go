package models

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	default:
		return false
	}
}

// AttendanceRecord is one attendance decision for one student on one
// calendar day. Presence is represented by record existence: marking a
// student absent again deletes the record rather than flipping a flag,
// so at most one record exists per (student, date) pair.
type AttendanceRecord struct {
	ID         string           `json:"id"`
	Date       string           `json:"date"`
	GroupID    string           `json:"group_id"`
	StudentID  string           `json:"student_id"`
	Status     AttendanceStatus `json:"status"`
	RecordedBy string           `json:"recorded_by"`
}

// ToggleState is the resulting state of a toggle call.
type ToggleState string

const (
	TogglePresent ToggleState = "present"
	ToggleAbsent  ToggleState = "absent"
)

// RollCallEntry pairs a student with today's presence for a group.
type RollCallEntry struct {
	Student Student `json:"student"`
	Present bool    `json:"present"`
}
