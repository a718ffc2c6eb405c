package models

// StudentStatus enumerates enrollment states.
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// Student represents a learner enrolled in one group. SectionID is
// derived from the group at enrollment time and kept alongside it for
// display.
type Student struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	EnrollmentID    string        `json:"enrollment_id"`
	GroupID         string        `json:"group_id"`
	SectionID       string        `json:"section_id"`
	Status          StudentStatus `json:"status"`
	AttendanceCount int           `json:"attendance_count"`
}

// StudentDetail annotates a student with resolved group and section
// names. Either may be nil when the reference dangles.
type StudentDetail struct {
	Student
	GroupName   *string `json:"group_name,omitempty"`
	SectionName *string `json:"section_name,omitempty"`
}
