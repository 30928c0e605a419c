package service

import (
	"context"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// Analyzer is an interface that abstracts the edge pipeline
// This allows for easier testing and mocking
type Analyzer interface {
	AnalyzeSlate(text, date string, params models.RunParams) ([]*models.EdgeRecord, error)
	AnalyzeGames(games []models.Game, params models.RunParams) ([]*models.EdgeRecord, error)
	RunDay(ctx context.Context, date string, params models.RunParams) ([]*models.EdgeRecord, error)
}
