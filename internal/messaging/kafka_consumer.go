package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
	"github.com/cypherlabdev/edge-pipeline-service/internal/pipeline"
	"github.com/cypherlabdev/edge-pipeline-service/internal/service"
)

// KafkaConsumer consumes raw slate-text batches from Kafka, runs them through
// the edge pipeline, and caches the resulting records.
type KafkaConsumer struct {
	reader   *kafka.Reader
	analyzer service.Analyzer
	cache    service.Cache
	defaults models.RunParams
	logger   zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration.
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "slate_text"
	GroupID string   // e.g., "edge-pipeline"
}

// NewKafkaConsumer creates a new Kafka consumer.
func NewKafkaConsumer(
	config KafkaConsumerConfig,
	analyzer service.Analyzer,
	cache service.Cache,
	defaults models.RunParams,
	logger zerolog.Logger,
) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader:   reader,
		analyzer: analyzer,
		cache:    cache,
		defaults: defaults,
		logger:   logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage analyzes one slate-text batch and caches the records.
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var slateMsg models.KafkaSlateTextMessage
	if err := json.Unmarshal(msg.Value, &slateMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	c.logger.Debug().
		Str("date", slateMsg.Date).
		Str("batch_id", slateMsg.BatchID).
		Int("text_bytes", len(slateMsg.Text)).
		Msg("processing slate text batch")

	records, err := c.analyzer.AnalyzeSlate(slateMsg.Text, slateMsg.Date, c.defaults)
	if err != nil {
		// An unparseable slate is a producer problem, not a reason to
		// redeliver forever; log it and move on.
		if errors.Is(err, pipeline.ErrNoGames) {
			c.logger.Warn().
				Str("batch_id", slateMsg.BatchID).
				Msg("slate text yielded no games, skipping batch")
			return nil
		}
		return fmt.Errorf("failed to analyze slate: %w", err)
	}

	if err := c.cache.SetBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to cache edge records: %w", err)
	}

	c.logger.Info().
		Str("date", slateMsg.Date).
		Str("batch_id", slateMsg.BatchID).
		Int("records", len(records)).
		Msg("analyzed and cached slate batch")

	return nil
}

// Close closes the Kafka reader.
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
