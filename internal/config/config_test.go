package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig_Defaults tests loading configuration with default values
func TestLoadConfig_Defaults(t *testing.T) {
	// Load config without a file (should use defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server defaults
	assert.Equal(t, 8082, config.Server.Port)
	assert.Equal(t, 30*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, config.Server.WriteTimeout)

	// Verify Kafka defaults
	assert.Equal(t, []string{"localhost:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "slate_text", config.Kafka.Topic)
	assert.Equal(t, "edge-pipeline", config.Kafka.GroupID)

	// Verify Redis defaults
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "", config.Redis.Password)
	assert.Equal(t, 0, config.Redis.DB)
	assert.Equal(t, 6*time.Hour, config.Redis.TTL)

	// Verify betting defaults
	assert.Equal(t, 100000.0, config.Betting.Bankroll)
	assert.Equal(t, 0.5, config.Betting.KellyFraction)
	assert.Equal(t, 0.02, config.Betting.MaxPct)
	assert.Equal(t, 0.03, config.Betting.HomeField)
	assert.Equal(t, "pinnacle", config.Betting.SharpBook)

	// Verify provider defaults
	assert.Equal(t, "https://statsapi.mlb.com", config.Providers.StatsAPIBaseURL)
	assert.Equal(t, 10*time.Second, config.Providers.StatsAPITimeout)
	assert.Equal(t, "", config.Providers.OCREndpoint)

	// Verify logging defaults
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
}

// TestLoadConfig_WithFile tests loading configuration from file
func TestLoadConfig_WithFile(t *testing.T) {
	// Create temporary config file
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	configContent := `
server:
  port: 9090
  read_timeout: 45s
  write_timeout: 45s

kafka:
  brokers:
    - broker1:9092
    - broker2:9092
  topic: test_topic
  group_id: test_group

redis:
  addr: redis:6379
  password: test_password
  db: 1
  ttl: 30m

betting:
  bankroll: 25000
  kelly_fraction: 0.25
  max_pct: 0.01
  home_field: 0.05
  sharp_book: circa

providers:
  statsapi_base_url: http://statsapi.test
  statsapi_timeout: 5s
  ocr_endpoint: http://ocr.test/recognize
  ocr_timeout: 20s

logging:
  level: debug
  format: console
`

	_, err = tmpFile.WriteString(configContent)
	require.NoError(t, err)
	tmpFile.Close()

	// Load config from file
	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify server config
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 45*time.Second, config.Server.ReadTimeout)
	assert.Equal(t, 45*time.Second, config.Server.WriteTimeout)

	// Verify Kafka config
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, "test_topic", config.Kafka.Topic)
	assert.Equal(t, "test_group", config.Kafka.GroupID)

	// Verify Redis config
	assert.Equal(t, "redis:6379", config.Redis.Addr)
	assert.Equal(t, "test_password", config.Redis.Password)
	assert.Equal(t, 1, config.Redis.DB)
	assert.Equal(t, 30*time.Minute, config.Redis.TTL)

	// Verify betting config
	assert.Equal(t, 25000.0, config.Betting.Bankroll)
	assert.Equal(t, 0.25, config.Betting.KellyFraction)
	assert.Equal(t, 0.01, config.Betting.MaxPct)
	assert.Equal(t, 0.05, config.Betting.HomeField)
	assert.Equal(t, "circa", config.Betting.SharpBook)

	// Verify provider config
	assert.Equal(t, "http://statsapi.test", config.Providers.StatsAPIBaseURL)
	assert.Equal(t, 5*time.Second, config.Providers.StatsAPITimeout)
	assert.Equal(t, "http://ocr.test/recognize", config.Providers.OCREndpoint)
	assert.Equal(t, 20*time.Second, config.Providers.OCRTimeout)

	// Verify logging config
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
}

// TestLoadConfig_InvalidFile tests loading with non-existent file
func TestLoadConfig_InvalidFile(t *testing.T) {
	config, err := LoadConfig("/nonexistent/config.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
}

// TestLoadConfig_PartialFile tests loading with partial configuration
func TestLoadConfig_PartialFile(t *testing.T) {
	// Create temporary config file with partial config
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpFile.Name())

	partialContent := `
server:
  port: 9090

betting:
  bankroll: 50000

# Other configs will use defaults
`

	_, err = tmpFile.WriteString(partialContent)
	require.NoError(t, err)
	tmpFile.Close()

	// Load config from file
	config, err := LoadConfig(tmpFile.Name())

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify overridden values
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, 50000.0, config.Betting.Bankroll)

	// Verify defaults are still used for non-specified values
	assert.Equal(t, 0.5, config.Betting.KellyFraction)
	assert.Equal(t, "slate_text", config.Kafka.Topic)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
}

// TestLoadConfig_EnvironmentVariables tests environment variable overrides
func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	// Set environment variables
	os.Setenv("EDGE_PIPELINE_SERVER_PORT", "7777")
	os.Setenv("EDGE_PIPELINE_REDIS_ADDR", "env-redis:6379")
	os.Setenv("EDGE_PIPELINE_KAFKA_TOPIC", "env_topic")
	defer func() {
		os.Unsetenv("EDGE_PIPELINE_SERVER_PORT")
		os.Unsetenv("EDGE_PIPELINE_REDIS_ADDR")
		os.Unsetenv("EDGE_PIPELINE_KAFKA_TOPIC")
	}()

	// Load config (env vars should override defaults)
	config, err := LoadConfig("")

	require.NoError(t, err)
	require.NotNil(t, config)

	// Verify environment variables were used
	assert.Equal(t, 7777, config.Server.Port)
	assert.Equal(t, "env-redis:6379", config.Redis.Addr)
	assert.Equal(t, "env_topic", config.Kafka.Topic)
}

// TestToRunParams tests conversion to pipeline run parameters
func TestToRunParams(t *testing.T) {
	betting := BettingConfig{
		Bankroll:      25000,
		KellyFraction: 0.25,
		MaxPct:        0.01,
		HomeField:     0.05,
		SharpBook:     "circa",
	}

	params := betting.ToRunParams()

	assert.Equal(t, 25000.0, params.Bankroll)
	assert.Equal(t, 0.25, params.KellyFraction)
	assert.Equal(t, 0.01, params.MaxPct)
	assert.Equal(t, 0.05, params.HomeField)
}

// TestBettingConfig tests betting parameter sanity
func TestBettingConfig(t *testing.T) {
	tests := []struct {
		name   string
		config BettingConfig
	}{
		{
			name: "Conservative sizing",
			config: BettingConfig{
				Bankroll:      10000,
				KellyFraction: 0.25,
				MaxPct:        0.01,
				HomeField:     0.03,
				SharpBook:     "pinnacle",
			},
		},
		{
			name: "Half Kelly",
			config: BettingConfig{
				Bankroll:      100000,
				KellyFraction: 0.5,
				MaxPct:        0.02,
				HomeField:     0.03,
				SharpBook:     "pinnacle",
			},
		},
		{
			name: "Full Kelly",
			config: BettingConfig{
				Bankroll:      50000,
				KellyFraction: 1.0,
				MaxPct:        0.05,
				HomeField:     0.0,
				SharpBook:     "circa",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Greater(t, tt.config.Bankroll, 0.0)
			assert.Greater(t, tt.config.KellyFraction, 0.0)
			assert.LessOrEqual(t, tt.config.KellyFraction, 1.0)
			assert.Greater(t, tt.config.MaxPct, 0.0)
			assert.LessOrEqual(t, tt.config.MaxPct, 1.0)
			assert.NotEmpty(t, tt.config.SharpBook)
		})
	}
}

// TestLoggingConfig tests logging configuration
func TestLoggingConfig(t *testing.T) {
	tests := []struct {
		name   string
		config LoggingConfig
	}{
		{
			name: "JSON production logging",
			config: LoggingConfig{
				Level:  "info",
				Format: "json",
			},
		},
		{
			name: "Console development logging",
			config: LoggingConfig{
				Level:  "debug",
				Format: "console",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validLevels := []string{"debug", "info", "warn", "error"}
			assert.Contains(t, validLevels, tt.config.Level)

			validFormats := []string{"json", "console"}
			assert.Contains(t, validFormats, tt.config.Format)
		})
	}
}
