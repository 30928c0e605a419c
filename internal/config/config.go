package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/cypherlabdev/edge-pipeline-service/internal/models"
)

// Config holds all configuration for edge-pipeline-service
type Config struct {
	Server    ServerConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	Betting   BettingConfig
	Providers ProvidersConfig
	Logging   LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string // Topic to consume from (slate_text)
	GroupID string `mapstructure:"group_id"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// BettingConfig holds bankroll and sizing parameters
type BettingConfig struct {
	Bankroll      float64 // Total bankroll in account currency
	KellyFraction float64 `mapstructure:"kelly_fraction"` // Fraction of full Kelly (0.5 = half Kelly)
	MaxPct        float64 `mapstructure:"max_pct"`        // Per-bet cap as a fraction of bankroll
	HomeField     float64 `mapstructure:"home_field"`     // Home-field advantage feature value
	SharpBook     string  `mapstructure:"sharp_book"`     // Book whose quote is de-vigged for the market prob
}

// ProvidersConfig holds external data provider configuration
type ProvidersConfig struct {
	StatsAPIBaseURL string        `mapstructure:"statsapi_base_url"`
	StatsAPITimeout time.Duration `mapstructure:"statsapi_timeout"`
	OCREndpoint     string        `mapstructure:"ocr_endpoint"` // empty disables screenshot recognition
	OCRTimeout      time.Duration `mapstructure:"ocr_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8082)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "slate_text")
	v.SetDefault("kafka.group_id", "edge-pipeline")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 6*time.Hour)

	v.SetDefault("betting.bankroll", 100000.0)
	v.SetDefault("betting.kelly_fraction", 0.5)
	v.SetDefault("betting.max_pct", 0.02)
	v.SetDefault("betting.home_field", 0.03)
	v.SetDefault("betting.sharp_book", "pinnacle")

	v.SetDefault("providers.statsapi_base_url", "https://statsapi.mlb.com")
	v.SetDefault("providers.statsapi_timeout", 10*time.Second)
	v.SetDefault("providers.ocr_endpoint", "")
	v.SetDefault("providers.ocr_timeout", 15*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Override with environment variables
	v.SetEnvPrefix("EDGE_PIPELINE")
	v.AutomaticEnv()
	// Replace . with _ for environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unmarshal to struct
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// ToRunParams converts betting config to pipeline run parameters
func (c *BettingConfig) ToRunParams() models.RunParams {
	return models.RunParams{
		Bankroll:      c.Bankroll,
		KellyFraction: c.KellyFraction,
		MaxPct:        c.MaxPct,
		HomeField:     c.HomeField,
	}
}
