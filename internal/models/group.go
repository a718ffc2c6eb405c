package models

// ScheduleItem is one timetabled session for a group.
type ScheduleItem struct {
	ID        string `json:"id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Subject   string `json:"subject"`
	Classroom string `json:"classroom"`
	TeacherID string `json:"teacher_id"`
	GroupID   string `json:"group_id"`
}

// Group is a classroom cohort within a section, taught by one teacher.
// Groups are read-only after initial load.
type Group struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	TeacherID    string         `json:"teacher_id"`
	SectionID    string         `json:"section_id"`
	StudentCount int            `json:"student_count"`
	Schedule     []ScheduleItem `json:"schedule"`
}

// GroupDetail annotates a group with its resolved section. Section is
// nil when the referenced section no longer exists; a removed section
// never breaks group listings.
type GroupDetail struct {
	Group
	Section *Section `json:"section,omitempty"`
}
