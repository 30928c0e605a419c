package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// EdgeService orchestrates edge analysis with caching.
type EdgeService struct {
	analyzer Analyzer
	cache    Cache
	logger   zerolog.Logger
}

// NewEdgeService creates a new edge service.
func NewEdgeService(analyzer Analyzer, cache Cache, logger zerolog.Logger) *EdgeService {
	return &EdgeService{
		analyzer: analyzer,
		cache:    cache,
		logger:   logger.With().Str("component", "edge_service").Logger(),
	}
}

// AnalyzeSlate parses and analyzes raw slate text, then caches the records.
// Cache failures are logged but never fail the request.
func (s *EdgeService) AnalyzeSlate(ctx context.Context, text, date string, params models.RunParams) ([]*models.EdgeRecord, error) {
	records, err := s.analyzer.AnalyzeSlate(text, date, params)
	if err != nil {
		return nil, fmt.Errorf("slate analysis failed: %w", err)
	}

	if err := s.cache.SetBatch(ctx, records); err != nil {
		s.logger.Warn().
			Err(err).
			Str("date", date).
			Int("count", len(records)).
			Msg("failed to cache edge records")
	}

	s.logger.Info().
		Str("date", date).
		Int("count", len(records)).
		Msg("analyzed and cached slate")

	return records, nil
}

// RunDay fetches the date's games from providers, analyzes them, and caches
// the records.
func (s *EdgeService) RunDay(ctx context.Context, date string, params models.RunParams) ([]*models.EdgeRecord, error) {
	records, err := s.analyzer.RunDay(ctx, date, params)
	if err != nil {
		return nil, fmt.Errorf("day run failed: %w", err)
	}

	if err := s.cache.SetBatch(ctx, records); err != nil {
		s.logger.Warn().
			Err(err).
			Str("date", date).
			Int("count", len(records)).
			Msg("failed to cache edge records")
	}

	s.logger.Info().
		Str("date", date).
		Int("count", len(records)).
		Msg("completed and cached day run")

	return records, nil
}

// GetEdgesByDate retrieves all cached edge records for a date.
func (s *EdgeService) GetEdgesByDate(ctx context.Context, date string) ([]*models.EdgeRecord, error) {
	records, err := s.cache.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve edges for date: %w", err)
	}

	s.logger.Debug().
		Str("date", date).
		Int("count", len(records)).
		Msg("retrieved edge records by date")

	return records, nil
}

// GetEdge retrieves one cached edge record by date and game key.
func (s *EdgeService) GetEdge(ctx context.Context, date, gameKey string) (*models.EdgeRecord, error) {
	rec, err := s.cache.Get(ctx, date, gameKey)
	if err != nil {
		return nil, fmt.Errorf("edge record not found for date=%s game=%s: %w", date, gameKey, err)
	}
	return rec, nil
}
