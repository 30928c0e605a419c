package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cypherlabdev/edge-pipeline-service/internal/cache"
	"github.com/cypherlabdev/edge-pipeline-service/internal/config"
	httpHandler "github.com/cypherlabdev/edge-pipeline-service/internal/handler/http"
	"github.com/cypherlabdev/edge-pipeline-service/internal/messaging"
	"github.com/cypherlabdev/edge-pipeline-service/internal/model"
	"github.com/cypherlabdev/edge-pipeline-service/internal/ocr"
	"github.com/cypherlabdev/edge-pipeline-service/internal/pipeline"
	"github.com/cypherlabdev/edge-pipeline-service/internal/providers/lines"
	"github.com/cypherlabdev/edge-pipeline-service/internal/providers/statsapi"
	"github.com/cypherlabdev/edge-pipeline-service/internal/service"
)

func main() {
	// Load configuration (EDGE_PIPELINE_CONFIG points at an optional file)
	cfg, err := config.LoadConfig(os.Getenv("EDGE_PIPELINE_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Setup logger
	logger := setupLogger(cfg.Logging)
	logger.Info().Msg("starting edge-pipeline-service")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create Redis cache
	redisCache := cache.NewRedisCache(
		cache.RedisCacheConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		},
		logger,
	)
	defer redisCache.Close()

	// Test Redis connection
	if err := redisCache.Ping(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	// Create schedule and lines providers
	schedule := statsapi.NewClient(
		statsapi.Config{
			BaseURL: cfg.Providers.StatsAPIBaseURL,
			Timeout: cfg.Providers.StatsAPITimeout,
		},
		logger,
	)
	linesProvider := lines.NewStaticProvider(lines.DefaultBooks())

	// Create pipeline engine
	engine := pipeline.NewEngine(
		model.NewLogisticModel(),
		schedule,
		linesProvider,
		cfg.Betting.SharpBook,
		logger,
	)
	logger.Info().Str("sharp_book", cfg.Betting.SharpBook).Msg("pipeline engine initialized")

	// Create edge service layer
	edgeService := service.NewEdgeService(engine, redisCache, logger)
	logger.Info().Msg("edge service initialized")

	// Create Kafka consumer for slate-text batches
	consumer := messaging.NewKafkaConsumer(
		messaging.KafkaConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
			GroupID: cfg.Kafka.GroupID,
		},
		engine,
		redisCache,
		cfg.Betting.ToRunParams(),
		logger,
	)
	defer consumer.Close()

	// Start Kafka consumer in goroutine
	go func() {
		if err := consumer.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("Kafka consumer failed")
		}
	}()

	// Initialize HTTP handler
	edgeHandler := httpHandler.NewEdgeHandler(
		edgeService,
		newRecognizer(cfg.Providers, logger),
		cfg.Betting.ToRunParams(),
		logger,
	)
	logger.Info().Msg("HTTP handler initialized")

	// Setup HTTP server routes
	mux := http.NewServeMux()

	// Health and monitoring endpoints
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		readyHandler(w, r, redisCache)
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Register API routes
	edgeHandler.RegisterRoutes(mux)
	logger.Info().Msg("API routes registered")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("shutting down gracefully...")

	// Cancel context to stop consumer
	cancel()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("shutdown complete")
}

// newRecognizer wires the OCR backend, or the disabled stand-in when no
// endpoint is configured.
func newRecognizer(cfg config.ProvidersConfig, logger zerolog.Logger) ocr.Recognizer {
	if cfg.OCREndpoint == "" {
		logger.Info().Msg("no OCR endpoint configured, screenshot recognition disabled")
		return ocr.Disabled{}
	}
	return ocr.NewRemoteRecognizer(
		ocr.Config{
			Endpoint: cfg.OCREndpoint,
			Timeout:  cfg.OCRTimeout,
		},
		logger,
	)
}

// setupLogger configures the logger based on config
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Set format
	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return log.Logger.With().Str("service", "edge-pipeline").Logger()
}

// healthHandler returns 200 if service is running
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// readyHandler returns 200 if service is ready to accept traffic
func readyHandler(w http.ResponseWriter, r *http.Request, cache *cache.RedisCache) {
	// Check Redis connection
	if err := cache.Ping(r.Context()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("Redis unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
