package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
)

type dashboardStore interface {
	Counts() (students, sections, groups, teachers, attendance int)
	Sections() []models.Section
	GroupsInSection(sectionID string) []models.Group
	Revision() uint64
}

// DashboardOverview is the stat-card payload for the landing view.
type DashboardOverview struct {
	Students    int             `json:"students"`
	Sections    int             `json:"sections"`
	Groups      int             `json:"groups"`
	Teachers    int             `json:"teachers"`
	Attendance  int             `json:"attendance_records"`
	BySection   []SectionGroups `json:"by_section"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// SectionGroups lists one section's groups for the overview panel.
type SectionGroups struct {
	Section models.Section `json:"section"`
	Groups  []models.Group `json:"groups"`
}

// DashboardService composes the counts shown on the landing view.
type DashboardService struct {
	store    dashboardStore
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(store dashboardStore, cache *CacheService, logger *zap.Logger, cacheTTL time.Duration) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}
	return &DashboardService{store: store, cache: cache, logger: logger, cacheTTL: cacheTTL, now: time.Now}
}

// Overview returns entity counts and the groups-per-section breakdown.
// The second return value reports a cache hit.
func (s *DashboardService) Overview(ctx context.Context) (*DashboardOverview, bool) {
	cacheKey := fmt.Sprintf("dash:overview:%d", s.store.Revision())
	if s.cache.Enabled() {
		var cached DashboardOverview
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return &cached, true
		}
	}

	students, sections, groups, teachers, attendance := s.store.Counts()
	overview := &DashboardOverview{
		Students:    students,
		Sections:    sections,
		Groups:      groups,
		Teachers:    teachers,
		Attendance:  attendance,
		GeneratedAt: s.now(),
	}
	for _, sec := range s.store.Sections() {
		overview.BySection = append(overview.BySection, SectionGroups{
			Section: sec,
			Groups:  s.store.GroupsInSection(sec.ID),
		})
	}

	if s.cache.Enabled() {
		_ = s.cache.Set(ctx, cacheKey, overview, s.cacheTTL)
	}
	return overview, false
}
