package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"passion-match/internal/analysis"
	"passion-match/internal/domain"
	"passion-match/internal/metrics"
	"passion-match/internal/repository"
)

var (
	ErrTraitServiceNotConfigured = errors.New("trait service not configured")
	ErrInvalidAnalysisInput      = errors.New("invalid analysis input")
	ErrTraitsNotFound            = errors.New("traits not found")
)

const defaultAnalysisCacheTTL = time.Hour

// TraitService analiza transcripts, persiste los rasgos por usuario y lo rutea a sus salas.
type TraitService struct {
	traits   repository.TraitRepository
	clusters *ClusterService
	cache    AnalysisCache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

func NewTraitService(
	logger *zap.Logger,
	traits repository.TraitRepository,
	clusters *ClusterService,
	cache AnalysisCache,
	cacheTTL time.Duration,
) *TraitService {
	if cache == nil {
		cache = NewMemoryAnalysisCache()
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultAnalysisCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TraitService{
		traits:   traits,
		clusters: clusters,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze nunca falla: los errores de cache se loguean y se recalcula.
func (s *TraitService) Analyze(ctx context.Context, transcript, niche string) domain.TraitAnalysis {
	key := AnalysisCacheKey(transcript, niche)

	cached, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.AnalysisCacheResults.WithLabelValues(metrics.CacheError).Inc()
		s.logger.Warn("analysis cache get failed", zap.Error(err))
	case ok:
		metrics.AnalysisCacheResults.WithLabelValues(metrics.CacheHit).Inc()
		return cached
	default:
		metrics.AnalysisCacheResults.WithLabelValues(metrics.CacheMiss).Inc()
	}

	result := analysis.AnalyzeTranscript(transcript, niche)
	metrics.AnalysesTotal.WithLabelValues(string(result.Archetype)).Inc()
	metrics.PassionScore.Observe(float64(result.PassionScore))

	if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
		s.logger.Warn("analysis cache set failed", zap.Error(err))
	}
	return result
}

// AnalyzeAndPersist analiza el transcript, guarda los rasgos del usuario y lo asigna a sus salas.
func (s *TraitService) AnalyzeAndPersist(ctx context.Context, userID, transcript, niche string) (domain.Traits, RoomAssignment, error) {
	if s == nil || s.traits == nil || s.clusters == nil {
		return domain.Traits{}, RoomAssignment{}, ErrTraitServiceNotConfigured
	}

	userID = strings.TrimSpace(userID)
	niche = strings.TrimSpace(niche)
	if userID == "" || niche == "" {
		return domain.Traits{}, RoomAssignment{}, ErrInvalidAnalysisInput
	}

	result := s.Analyze(ctx, transcript, niche)
	traits := domain.NewTraits(userID, result, s.now().UTC())

	if err := s.traits.Upsert(ctx, traits); err != nil {
		s.logger.Warn("traits upsert failed", zap.Error(err), zap.String("user_id", userID))
		return domain.Traits{}, RoomAssignment{}, fmt.Errorf("traits upsert: %w", err)
	}

	rooms, err := s.clusters.AssignUser(ctx, userID, result, niche)
	if err != nil {
		s.logger.Warn("room assignment failed", zap.Error(err), zap.String("user_id", userID))
		return domain.Traits{}, RoomAssignment{}, fmt.Errorf("assign rooms: %w", err)
	}

	s.logger.Info("traits analyzed",
		zap.String("user_id", userID),
		zap.String("archetype", string(result.Archetype)),
		zap.Int("passion_score", result.PassionScore),
		zap.Strings("tags", result.Tags),
	)

	return traits, rooms, nil
}

// GetTraits devuelve el ultimo analisis persistido del usuario.
func (s *TraitService) GetTraits(ctx context.Context, userID string) (domain.Traits, error) {
	if s == nil || s.traits == nil {
		return domain.Traits{}, ErrTraitServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Traits{}, ErrInvalidAnalysisInput
	}

	traits, err := s.traits.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Traits{}, ErrTraitsNotFound
		}
		return domain.Traits{}, fmt.Errorf("get traits for user %s: %w", userID, err)
	}
	return traits, nil
}
