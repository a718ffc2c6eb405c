package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/edusuite/escolar-api/internal/models"
)

// FallbackSummary is returned whenever the text-generation dependency
// fails. The panel never surfaces generation failures to the user.
const FallbackSummary = "No se pudo generar el análisis en este momento."

// TextGenerator is the external text-generation dependency: prompt in,
// text or error out.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type assistantStore interface {
	Students() []models.Student
	Groups() []models.Group
	AttendanceRecords() []models.AttendanceRecord
	Revision() uint64
}

// SummaryResponse carries the generated or fallback analysis text.
type SummaryResponse struct {
	Summary     string    `json:"summary"`
	Fallback    bool      `json:"fallback"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AssistantService builds the attendance-summary prompt and absorbs
// every failure of the generator into a fixed fallback message, so an
// optional feature can never break the panel.
type AssistantService struct {
	store     assistantStore
	generator TextGenerator
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	timeout   time.Duration
	cacheTTL  time.Duration
	now       func() time.Time
}

// NewAssistantService constructs the assistant service. A nil generator
// (disabled feature, missing credential) behaves like a failing
// dependency and yields the fallback text.
func NewAssistantService(store assistantStore, generator TextGenerator, cache *CacheService, metrics *MetricsService, logger *zap.Logger, timeout, cacheTTL time.Duration) *AssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AssistantService{
		store:     store,
		generator: generator,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		timeout:   timeout,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

// AttendanceSummary produces a short executive analysis of the current
// attendance data. It never returns an error: dependency failures are
// logged and replaced by the fallback text. The second return value
// reports a cache hit.
func (s *AssistantService) AttendanceSummary(ctx context.Context) (*SummaryResponse, bool) {
	cacheKey := fmt.Sprintf("assistant:summary:%d", s.store.Revision())
	if s.cache.Enabled() {
		var cached SummaryResponse
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return &cached, true
		}
	}

	resp := s.generate(ctx)
	if !resp.Fallback && s.cache.Enabled() {
		_ = s.cache.Set(ctx, cacheKey, resp, s.cacheTTL)
	}
	return resp, false
}

func (s *AssistantService) generate(ctx context.Context) *SummaryResponse {
	prompt := s.buildPrompt()

	if s.generator == nil {
		s.logger.Warn("summary requested but no generator is configured")
		return &SummaryResponse{Summary: FallbackSummary, Fallback: true, GeneratedAt: s.now()}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	text, err := s.generator.GenerateText(callCtx, prompt)
	duration := time.Since(start)
	if err != nil {
		s.metrics.RecordGeneratorCall("error", duration)
		s.logger.Error("summary generation failed", zap.Error(err))
		return &SummaryResponse{Summary: FallbackSummary, Fallback: true, GeneratedAt: s.now()}
	}
	s.metrics.RecordGeneratorCall("success", duration)

	return &SummaryResponse{Summary: text, GeneratedAt: s.now()}
}

func (s *AssistantService) buildPrompt() string {
	students := s.store.Students()
	groups := s.store.Groups()
	records := s.store.AttendanceRecords()

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}

	return fmt.Sprintf(`Como consultor educativo, analiza los siguientes datos escolares y proporciona un resumen ejecutivo breve (máximo 200 palabras) sobre el rendimiento de asistencia.
Alumnos totales: %d
Grupos: %s
Registros de asistencia recientes: %d

Por favor identifica:
1. Un patrón positivo.
2. Un área de preocupación.
3. Una recomendación pedagógica para mejorar el compromiso de los alumnos.
Responde en español y usa un tono profesional pero motivador.`,
		len(students), strings.Join(names, ", "), len(records))
}
