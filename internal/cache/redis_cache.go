package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// RedisCache holds the edge records of recent analysis runs, keyed per date.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration.
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 6 * time.Hour
}

// NewRedisCache creates a new Redis cache.
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

// key builds the Redis key: edges:{date}:{away}@{home}
func key(date, gameKey string) string {
	return fmt.Sprintf("edges:%s:%s", date, gameKey)
}

// Set caches a single edge record.
func (c *RedisCache) Set(ctx context.Context, rec *models.EdgeRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal edge record: %w", err)
	}

	k := key(rec.Date, rec.GameKey())
	if err := c.client.Set(ctx, k, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", k).
		Dur("ttl", c.ttl).
		Msg("cached edge record")

	return nil
}

// Get retrieves one cached edge record by date and game key (away@home).
func (c *RedisCache) Get(ctx context.Context, date, gameKey string) (*models.EdgeRecord, error) {
	data, err := c.client.Get(ctx, key(date, gameKey)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("edge record not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var rec models.EdgeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal edge record: %w", err)
	}

	return &rec, nil
}

// SetBatch caches all records of a run in one pipeline round trip.
func (c *RedisCache) SetBatch(ctx context.Context, records []*models.EdgeRecord) error {
	if len(records) == 0 {
		return nil
	}

	pipe := c.client.Pipeline()

	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			c.logger.Error().Err(err).Msg("failed to marshal edge record")
			continue
		}
		pipe.Set(ctx, key(rec.Date, rec.GameKey()), data, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to execute pipeline: %w", err)
	}

	c.logger.Info().
		Int("count", len(records)).
		Msg("cached batch of edge records")

	return nil
}

// GetByDate retrieves all cached edge records for a slate date.
func (c *RedisCache) GetByDate(ctx context.Context, date string) ([]*models.EdgeRecord, error) {
	pattern := fmt.Sprintf("edges:%s:*", date)

	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	records := make([]*models.EdgeRecord, 0, len(keys))
	for _, k := range keys {
		data, err := c.client.Get(ctx, k).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", k).Msg("failed to get key")
			continue
		}

		var rec models.EdgeRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			c.logger.Warn().Err(err).Str("key", k).Msg("failed to unmarshal edge record")
			continue
		}

		records = append(records, &rec)
	}

	return records, nil
}

// Ping checks Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
