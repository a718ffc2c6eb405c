package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
)

type teacherStore interface {
	Teachers() []models.Teacher
}

// TeacherService exposes the read-only teacher roster.
type TeacherService struct {
	store  teacherStore
	logger *zap.Logger
}

// NewTeacherService constructs the teacher service.
func NewTeacherService(store teacherStore, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: store, logger: logger}
}

// List returns every teacher in load order.
func (s *TeacherService) List(ctx context.Context) []models.Teacher {
	return s.store.Teachers()
}
