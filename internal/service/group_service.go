package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type groupStore interface {
	Groups() []models.Group
	FindGroup(id string) (models.Group, bool)
	FindSection(id string) (models.Section, bool)
}

// GroupService exposes the read-only group roster. Groups are loaded at
// startup and never mutated by this panel.
type GroupService struct {
	store  groupStore
	logger *zap.Logger
}

// NewGroupService constructs the group service.
func NewGroupService(store groupStore, logger *zap.Logger) *GroupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroupService{store: store, logger: logger}
}

// List returns every group with its section resolved leniently: a
// group whose section was removed lists with a nil section, never an
// error.
func (s *GroupService) List(ctx context.Context) []models.GroupDetail {
	groups := s.store.Groups()
	details := make([]models.GroupDetail, 0, len(groups))
	for _, g := range groups {
		details = append(details, s.resolveDetail(g))
	}
	return details
}

// Get returns one group with its section resolved.
func (s *GroupService) Get(ctx context.Context, id string) (*models.GroupDetail, error) {
	g, ok := s.store.FindGroup(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "group not found")
	}
	detail := s.resolveDetail(g)
	return &detail, nil
}

func (s *GroupService) resolveDetail(g models.Group) models.GroupDetail {
	detail := models.GroupDetail{Group: g}
	if section, ok := s.store.FindSection(g.SectionID); ok {
		detail.Section = &section
	}
	return detail
}
