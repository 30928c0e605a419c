package service

import (
	"context"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// Cache is an interface that abstracts cache operations
// This allows for easier testing and mocking
type Cache interface {
	Set(ctx context.Context, rec *models.EdgeRecord) error
	Get(ctx context.Context, date, gameKey string) (*models.EdgeRecord, error)
	SetBatch(ctx context.Context, records []*models.EdgeRecord) error
	GetByDate(ctx context.Context, date string) ([]*models.EdgeRecord, error)
	Ping(ctx context.Context) error
	Close() error
}
