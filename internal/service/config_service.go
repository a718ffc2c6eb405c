package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
	"github.com/edusuite/escolar-api/internal/store/state"
	appErrors "github.com/edusuite/escolar-api/pkg/errors"
)

type rosterProvider interface {
	Students() []models.Student
}

// UpdateConfigRequest holds the payload for changing school identity.
type UpdateConfigRequest struct {
	SchoolName   string `json:"schoolName" validate:"required"`
	PrimaryColor string `json:"primaryColor" validate:"required"`
	WelcomeMsg   string `json:"welcomeMsg"`
	LogoURL      string `json:"logoUrl" validate:"omitempty,url"`
}

// ConfigService owns the mutable school identity and flushes the
// durable snapshot (config + student roster) after every mutation. The
// core roster/attendance services never read this configuration.
type ConfigService struct {
	mu        sync.RWMutex
	current   models.SchoolConfig
	roster    rosterProvider
	state     state.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewConfigService constructs the configuration service with the
// identity restored from a snapshot or built from defaults.
func NewConfigService(initial models.SchoolConfig, roster rosterProvider, st state.Store, validate *validator.Validate, logger *zap.Logger) *ConfigService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if st == nil {
		st = state.Noop{}
	}
	if !initial.PrimaryColor.Valid() {
		initial.PrimaryColor = models.ThemeIndigo
	}
	return &ConfigService{current: initial, roster: roster, state: st, validator: validate, logger: logger}
}

// Get returns the current school identity.
func (s *ConfigService) Get(ctx context.Context) models.SchoolConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Theme resolves the current brand color to its style tokens.
func (s *ConfigService) Theme(ctx context.Context) models.ThemePalette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.PrimaryColor.Palette()
}

// Update replaces the school identity. The primary color must be a
// member of the closed theme set.
func (s *ConfigService) Update(ctx context.Context, req UpdateConfigRequest) (*models.SchoolConfig, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid configuration payload")
	}
	color := models.ThemeColor(req.PrimaryColor)
	if !color.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "primaryColor must be one of the supported theme colors")
	}

	s.mu.Lock()
	s.current = models.SchoolConfig{
		SchoolName:   req.SchoolName,
		PrimaryColor: color,
		WelcomeMsg:   req.WelcomeMsg,
		LogoURL:      req.LogoURL,
	}
	updated := s.current
	s.mu.Unlock()

	if err := s.PersistState(ctx); err != nil {
		s.logger.Warn("state flush failed", zap.Error(err))
	}

	s.logger.Info("school configuration updated", zap.String("school", updated.SchoolName), zap.String("color", string(updated.PrimaryColor)))
	return &updated, nil
}

// PersistState writes the durable snapshot: current configuration plus
// the student roster. Attendance records are deliberately excluded.
func (s *ConfigService) PersistState(ctx context.Context) error {
	s.mu.RLock()
	cfg := s.current
	s.mu.RUnlock()

	snap := &state.Snapshot{Config: cfg}
	if s.roster != nil {
		snap.Students = s.roster.Students()
	}
	return s.state.Save(ctx, snap)
}
