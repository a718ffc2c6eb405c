package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type studentStore interface {
	Students() []models.Student
	FindStudent(id string) (models.Student, bool)
	SearchStudents(term string) []models.Student
	StudentsInGroup(groupID string) []models.Student
	InsertStudent(st models.Student)
	RemoveStudent(id string) bool
	FindGroup(id string) (models.Group, bool)
	FindSection(id string) (models.Section, bool)
}

// statePersister flushes durable state after mutations. Persistence is
// best-effort: a failed flush is logged, never surfaced to the caller.
type statePersister interface {
	PersistState(ctx context.Context) error
}

// EnrollStudentRequest holds the payload for enrolling a student.
type EnrollStudentRequest struct {
	Name         string `json:"name" validate:"required"`
	EnrollmentID string `json:"enrollment_id" validate:"required"`
	GroupID      string `json:"group_id" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
}

// StudentService handles enrollment, withdrawal and roster queries.
type StudentService struct {
	store     studentStore
	state     statePersister
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(store studentStore, state statePersister, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: store, state: state, validator: validate, logger: logger}
}

// Search returns students matching the term, case-insensitively against
// name and enrollment id, in store insertion order. An empty term
// returns everyone.
func (s *StudentService) Search(ctx context.Context, term string) []models.StudentDetail {
	students := s.store.SearchStudents(term)
	details := make([]models.StudentDetail, 0, len(students))
	for _, st := range students {
		details = append(details, s.resolveDetail(st))
	}
	return details
}

// InGroup returns the students of one group in insertion order.
func (s *StudentService) InGroup(ctx context.Context, groupID string) ([]models.Student, error) {
	if _, ok := s.store.FindGroup(groupID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	return s.store.StudentsInGroup(groupID), nil
}

// Get returns one student with resolved group and section names.
func (s *StudentService) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	st, ok := s.store.FindStudent(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	detail := s.resolveDetail(st)
	return &detail, nil
}

// Enroll registers a new student. The section is derived from the
// resolved group, never taken from the caller.
func (s *StudentService) Enroll(ctx context.Context, req EnrollStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}
	group, ok := s.store.FindGroup(req.GroupID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "group does not exist")
	}

	student := models.Student{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		EnrollmentID:    req.EnrollmentID,
		GroupID:         group.ID,
		SectionID:       group.SectionID,
		Status:          models.StudentStatusActive,
		AttendanceCount: 0,
	}
	s.store.InsertStudent(student)
	s.persist(ctx)

	s.logger.Info("student enrolled",
		zap.String("student_id", student.ID),
		zap.String("group_id", group.ID),
	)
	return &student, nil
}

// Withdraw hard-deletes a student. Attendance records referencing the
// student are cascade-deleted by the store so no orphans survive. A
// second withdrawal of the same id fails with NOT_FOUND and leaves the
// store untouched.
func (s *StudentService) Withdraw(ctx context.Context, id string) error {
	if !s.store.RemoveStudent(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	s.persist(ctx)

	s.logger.Info("student withdrawn", zap.String("student_id", id))
	return nil
}

func (s *StudentService) resolveDetail(st models.Student) models.StudentDetail {
	detail := models.StudentDetail{Student: st}
	if group, ok := s.store.FindGroup(st.GroupID); ok {
		detail.GroupName = &group.Name
	}
	if section, ok := s.store.FindSection(st.SectionID); ok {
		detail.SectionName = &section.Name
	}
	return detail
}

func (s *StudentService) persist(ctx context.Context) {
	if s.state == nil {
		return
	}
	if err := s.state.PersistState(ctx); err != nil {
		s.logger.Warn("state flush failed", zap.Error(err))
	}
}
