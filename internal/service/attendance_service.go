package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type attendanceStore interface {
	FindStudent(id string) (models.Student, bool)
	FindGroup(id string) (models.Group, bool)
	StudentsInGroup(groupID string) []models.Student
	ToggleAttendance(rec models.AttendanceRecord) bool
	FindAttendance(studentID, date string) (models.AttendanceRecord, bool)
	CountAttendance(groupID, date string) int
}

// ToggleRequest identifies the student and the group context for one
// roll-call tap. The acting user arrives separately from the transport
// layer.
type ToggleRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	GroupID   string `json:"group_id" validate:"required"`
}

// ToggleResult reports the state the (student, day) key ended up in.
type ToggleResult struct {
	State  models.ToggleState       `json:"state"`
	Date   string                   `json:"date"`
	Record *models.AttendanceRecord `json:"record,omitempty"`
}

// AttendanceService owns the present/absent toggle. Presence for a
// (student, day) key is record existence: toggling creates a present
// record or deletes the existing one, so repeated calls alternate
// state. The day key comes from an injected clock truncated in one
// pinned timezone, so two taps on either side of that zone's midnight
// address different days.
type AttendanceService struct {
	store     attendanceStore
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
	loc       *time.Location
}

// NewAttendanceService constructs the attendance service. A nil
// location pins day truncation to the process-local zone.
func NewAttendanceService(store attendanceStore, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, loc *time.Location) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceService{
		store:     store,
		validator: validate,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
		loc:       loc,
	}
}

// Today returns the current day key in the configured timezone.
func (s *AttendanceService) Today() string {
	return s.dayKey(s.now())
}

// Toggle flips today's attendance for the student within the group
// context. Not idempotent by design: an even number of calls returns
// the key to its baseline.
func (s *AttendanceService) Toggle(ctx context.Context, req ToggleRequest, recordedBy string) (*ToggleResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid toggle payload")
	}
	if _, ok := s.store.FindStudent(req.StudentID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	if _, ok := s.store.FindGroup(req.GroupID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}

	date := s.dayKey(s.now())
	rec := models.AttendanceRecord{
		ID:         uuid.NewString(),
		Date:       date,
		GroupID:    req.GroupID,
		StudentID:  req.StudentID,
		Status:     models.AttendanceStatusPresent,
		RecordedBy: recordedBy,
	}

	result := &ToggleResult{Date: date}
	if s.store.ToggleAttendance(rec) {
		result.State = models.TogglePresent
		result.Record = &rec
	} else {
		result.State = models.ToggleAbsent
	}
	s.metrics.RecordToggle(string(result.State))

	s.logger.Info("attendance toggled",
		zap.String("student_id", req.StudentID),
		zap.String("group_id", req.GroupID),
		zap.String("date", date),
		zap.String("state", string(result.State)),
	)
	return result, nil
}

// PresentCount counts present records for (group, date). An empty date
// means today.
func (s *AttendanceService) PresentCount(ctx context.Context, groupID, date string) (int, string, error) {
	if _, ok := s.store.FindGroup(groupID); !ok {
		return 0, "", appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	if date == "" {
		date = s.dayKey(s.now())
	} else if _, err := time.ParseInLocation("2006-01-02", date, s.loc); err != nil {
		return 0, "", appErrors.Clone(appErrors.ErrValidation, "date must be formatted YYYY-MM-DD")
	}
	return s.store.CountAttendance(groupID, date), date, nil
}

// RollCall lists a group's students annotated with today's presence.
func (s *AttendanceService) RollCall(ctx context.Context, groupID string) ([]models.RollCallEntry, string, error) {
	if _, ok := s.store.FindGroup(groupID); !ok {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	date := s.dayKey(s.now())
	students := s.store.StudentsInGroup(groupID)
	entries := make([]models.RollCallEntry, 0, len(students))
	for _, st := range students {
		_, present := s.store.FindAttendance(st.ID, date)
		entries = append(entries, models.RollCallEntry{Student: st, Present: present})
	}
	return entries, date, nil
}

func (s *AttendanceService) dayKey(t time.Time) string {
	return t.In(s.loc).Format("2006-01-02")
}
