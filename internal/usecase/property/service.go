// Package property implements the property use cases: lookup by id and
// multi-criteria search with facets.
package property

import (
	"context"
	"fmt"
	"time"

	"github.com/propdex/propdex/internal/domain"
	"github.com/propdex/propdex/internal/domain/search"
	"github.com/propdex/propdex/internal/logger"
	"github.com/propdex/propdex/internal/metrics"

	"go.uber.org/zap"
)

// Service handles property lookups and searches.
type Service struct {
	repo         Repository
	defaultLimit int
	maxLimit     int
}

// New creates a property service.
func New(repo Repository) *Service {
	return &Service{
		repo:         repo,
		defaultLimit: search.DefaultLimit,
		maxLimit:     search.MaxLimit,
	}
}

// WithPagination overrides the default and maximum result limits.
func (s *Service) WithPagination(defaultLimit, maxLimit int) *Service {
	if defaultLimit > 0 {
		s.defaultLimit = defaultLimit
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// Get returns a property by id. Absence surfaces as domain.ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (domain.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Property{}, fmt.Errorf("get property %d: %w", id, err)
	}
	return p, nil
}

// Search normalizes the filter specification and runs it against the index.
func (s *Service) Search(ctx context.Context, params search.Params) (search.Result, error) {
	params.Normalize(s.defaultLimit, s.maxLimit)

	start := time.Now()
	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return search.Result{}, fmt.Errorf("search properties: %w", err)
	}

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchHitsTotal.Add(float64(result.TotalHits))
	for _, facet := range result.Facets {
		metrics.FacetComputationsTotal.WithLabelValues(facet.Name).Inc()
	}

	logger.FromContext(ctx).Debug("search executed",
		zap.Int64("total_hits", result.TotalHits),
		zap.Int64("took_ms", result.TookMs),
		zap.Int("items", len(result.Items)),
		zap.Int("facets", len(result.Facets)),
	)

	return result, nil
}
