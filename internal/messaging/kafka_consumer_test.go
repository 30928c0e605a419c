package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/edge-pipeline-service/internal/mocks"
	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
	"github.com/cypherlabdev/edge-pipeline-service/internal/pipeline"
)

// testKafkaConsumerSetup is a helper struct to hold test dependencies
type testKafkaConsumerSetup struct {
	mockAnalyzer *mocks.MockAnalyzer
	mockCache    *mocks.MockCache
	defaults     models.RunParams
	logger       zerolog.Logger
	ctrl         *gomock.Controller
}

// setupTestKafkaConsumer creates a test consumer with mocked dependencies
func setupTestKafkaConsumer(t *testing.T) *testKafkaConsumerSetup {
	ctrl := gomock.NewController(t)

	return &testKafkaConsumerSetup{
		mockAnalyzer: mocks.NewMockAnalyzer(ctrl),
		mockCache:    mocks.NewMockCache(ctrl),
		defaults: models.RunParams{
			Bankroll:      100000,
			KellyFraction: 0.5,
			MaxPct:        0.02,
			HomeField:     0.03,
		},
		logger: zerolog.Nop(),
		ctrl:   ctrl,
	}
}

// cleanup cleans up test resources
func (s *testKafkaConsumerSetup) cleanup() {
	s.ctrl.Finish()
}

func (s *testKafkaConsumerSetup) newConsumer() *KafkaConsumer {
	return NewKafkaConsumer(
		KafkaConsumerConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "slate_text",
			GroupID: "test-group",
		},
		s.mockAnalyzer,
		s.mockCache,
		s.defaults,
		s.logger,
	)
}

func slateMessage(t *testing.T, text string) kafka.Message {
	payload, err := json.Marshal(models.KafkaSlateTextMessage{
		Date:      "2026-09-01",
		Text:      text,
		BatchID:   uuid.NewString(),
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)
	return kafka.Message{Value: payload}
}

// TestNewKafkaConsumer tests consumer creation
func TestNewKafkaConsumer(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()

	assert.NotNil(t, consumer)
	assert.NotNil(t, consumer.reader)
	assert.Equal(t, "slate_text", consumer.reader.Config().Topic)
	assert.Equal(t, "test-group", consumer.reader.Config().GroupID)

	consumer.Close()
}

// TestProcessMessage_Success tests the analyze-and-cache path
func TestProcessMessage_Success(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()
	defer consumer.Close()

	text := "Boston Red Sox -145\nNew York Yankees +132"
	records := []*models.EdgeRecord{{ID: uuid.New(), Date: "2026-09-01", Away: "Boston Red Sox", Home: "New York Yankees"}}

	ctx := context.Background()
	setup.mockAnalyzer.EXPECT().
		AnalyzeSlate(text, "2026-09-01", setup.defaults).
		Return(records, nil)
	setup.mockCache.EXPECT().
		SetBatch(ctx, records).
		Return(nil)

	err := consumer.processMessage(ctx, slateMessage(t, text))
	assert.NoError(t, err)
}

// TestProcessMessage_InvalidJSON tests rejection of malformed payloads
func TestProcessMessage_InvalidJSON(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()
	defer consumer.Close()

	err := consumer.processMessage(context.Background(), kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}

// TestProcessMessage_EmptySlateSkipsBatch tests that an unparseable slate is
// dropped instead of redelivered forever
func TestProcessMessage_EmptySlateSkipsBatch(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()
	defer consumer.Close()

	ctx := context.Background()
	setup.mockAnalyzer.EXPECT().
		AnalyzeSlate("ocr noise", "2026-09-01", setup.defaults).
		Return(nil, fmt.Errorf("%w: slate text yielded no games", pipeline.ErrNoGames))

	// No-games is a producer problem: the batch is skipped and committed.
	err := consumer.processMessage(ctx, slateMessage(t, "ocr noise"))
	assert.NoError(t, err)
}

// TestProcessMessage_AnalyzerFailure tests that other analysis errors block commit
func TestProcessMessage_AnalyzerFailure(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()
	defer consumer.Close()

	ctx := context.Background()
	setup.mockAnalyzer.EXPECT().
		AnalyzeSlate("some slate", "2026-09-01", setup.defaults).
		Return(nil, errors.New("boom"))

	err := consumer.processMessage(ctx, slateMessage(t, "some slate"))
	assert.Error(t, err)
}

// TestProcessMessage_CacheError tests that cache failures block commit
func TestProcessMessage_CacheError(t *testing.T) {
	setup := setupTestKafkaConsumer(t)
	defer setup.cleanup()

	consumer := setup.newConsumer()
	defer consumer.Close()

	text := "Boston Red Sox -145\nNew York Yankees +132"
	records := []*models.EdgeRecord{{ID: uuid.New(), Date: "2026-09-01"}}

	ctx := context.Background()
	setup.mockAnalyzer.EXPECT().
		AnalyzeSlate(text, "2026-09-01", setup.defaults).
		Return(records, nil)
	setup.mockCache.EXPECT().
		SetBatch(ctx, records).
		Return(errors.New("redis down"))

	err := consumer.processMessage(ctx, slateMessage(t, text))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache")
}
