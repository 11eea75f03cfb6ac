package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"toolkit/internal/catalog"
	"toolkit/internal/metrics"
	"toolkit/internal/models"
	"toolkit/internal/repositories"
)

const DefaultTrendingSize = 8

// TrendingConfig tunes the ranker. Staleness is how long a ranked result is
// served without re-querying usage stats; Retention is how long an unused
// result is kept at all. Zero values disable memoization.
type TrendingConfig struct {
	Size      int
	Staleness time.Duration
	Retention time.Duration
}

type TrendingService interface {
	Trending(ctx context.Context) []models.Tool
}

type trendingService struct {
	usageRepo repositories.UsageRepository
	catalog   *catalog.Catalog
	cfg       TrendingConfig

	mu       sync.Mutex
	memo     []models.Tool
	rankedAt time.Time
}

func NewTrendingService(usageRepo repositories.UsageRepository, cat *catalog.Catalog, cfg TrendingConfig) TrendingService {
	if cfg.Size <= 0 {
		cfg.Size = DefaultTrendingSize
	}
	return &trendingService{usageRepo: usageRepo, catalog: cat, cfg: cfg}
}

// Trending returns the current trending list. It never fails: a usage-stats
// outage degrades to the catalog's popular tools.
func (s *trendingService) Trending(ctx context.Context) []models.Tool {
	s.mu.Lock()
	defer s.mu.Unlock()

	age := time.Since(s.rankedAt)
	if s.memo != nil && s.cfg.Retention > 0 && age >= s.cfg.Retention {
		s.memo = nil
	}
	if s.memo != nil && s.cfg.Staleness > 0 && age < s.cfg.Staleness {
		return copyTools(s.memo)
	}

	tools := s.rank(ctx)
	s.memo = tools
	s.rankedAt = time.Now()
	return copyTools(tools)
}

func (s *trendingService) rank(ctx context.Context) []models.Tool {
	size := s.cfg.Size

	stats, err := s.usageRepo.TopByWeeklyUses(ctx, int64(size))
	if err != nil {
		log.Warn().Err(err).Msg("Usage stats unavailable, serving popular tools instead")
		metrics.TrendingFallbacksTotal.Inc()
		return s.popularOnly(size)
	}
	if len(stats) == 0 {
		log.Debug().Msg("No tool usage recorded yet, backfilling trending with popular tools")
		metrics.TrendingEmptyUsageTotal.Inc()
	}

	tools := make([]models.Tool, 0, size)
	seen := make(map[string]bool, size)
	for _, stat := range stats {
		if len(tools) == size {
			break
		}
		tool, err := s.catalog.ByID(stat.ToolID)
		if err != nil {
			// Stale stat for a removed or renamed tool; not a fault.
			log.Debug().Str("tool_id", stat.ToolID).Msg("Dropping usage stat for unknown tool")
			continue
		}
		if seen[tool.ID] {
			continue
		}
		seen[tool.ID] = true
		tools = append(tools, tool)
	}

	for _, tool := range s.catalog.Popular() {
		if len(tools) == size {
			break
		}
		if seen[tool.ID] {
			continue
		}
		seen[tool.ID] = true
		tools = append(tools, tool)
	}
	return tools
}

func (s *trendingService) popularOnly(size int) []models.Tool {
	popular := s.catalog.Popular()
	if len(popular) > size {
		popular = popular[:size]
	}
	return popular
}

func copyTools(tools []models.Tool) []models.Tool {
	out := make([]models.Tool, len(tools))
	copy(out, tools)
	return out
}
