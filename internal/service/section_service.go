package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type sectionStore interface {
	Sections() []models.Section
	FindSection(id string) (models.Section, bool)
	InsertSection(sec models.Section)
	RemoveSection(id string) bool
	GroupsInSection(sectionID string) []models.Group
}

// AddSectionRequest holds the payload for creating a section.
type AddSectionRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color"`
}

// SectionService manages educational levels.
type SectionService struct {
	store     sectionStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSectionService constructs the section service.
func NewSectionService(store sectionStore, validate *validator.Validate, logger *zap.Logger) *SectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SectionService{store: store, validator: validate, logger: logger}
}

// List returns every section with its group count, in insertion order.
func (s *SectionService) List(ctx context.Context) []models.SectionDetail {
	sections := s.store.Sections()
	details := make([]models.SectionDetail, 0, len(sections))
	for _, sec := range sections {
		details = append(details, models.SectionDetail{
			Section:    sec,
			GroupCount: len(s.store.GroupsInSection(sec.ID)),
		})
	}
	return details
}

// Add creates a section. Any non-empty name is accepted; the color
// defaults to the panel's indigo brand when omitted.
func (s *SectionService) Add(ctx context.Context, req AddSectionRequest) (*models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}
	color := req.Color
	if color == "" {
		color = string(models.ThemeIndigo)
	}
	section := models.Section{ID: uuid.NewString(), Name: req.Name, Color: color}
	s.store.InsertSection(section)

	s.logger.Info("section created", zap.String("section_id", section.ID), zap.String("name", section.Name))
	return &section, nil
}

// Remove deletes a section. Groups and students that still reference it
// are not touched; listings resolve the dangling reference to a nil
// section from then on.
func (s *SectionService) Remove(ctx context.Context, id string) error {
	if !s.store.RemoveSection(id) {
		return appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	s.logger.Info("section removed", zap.String("section_id", id))
	return nil
}

// Groups lists the groups of one section.
func (s *SectionService) Groups(ctx context.Context, sectionID string) ([]models.Group, error) {
	if _, ok := s.store.FindSection(sectionID); !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
	}
	return s.store.GroupsInSection(sectionID), nil
}
