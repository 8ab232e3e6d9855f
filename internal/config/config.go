package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey        string
	RiotBaseURL       string // overrides every platform and regional host when set
	DataDragonBaseURL string
	DBPath            string
	ServerPort        string
	LogLevel          string
	DefaultPatch      string
	RiotRateLimit     float64 // requests per second
	RiotRateBurst     int
	IngestConcurrency int
	IngestTimelines   bool
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:        getEnv("RIOT_API_KEY", ""),
		RiotBaseURL:       getEnv("RIOT_BASE_URL", ""),
		DataDragonBaseURL: getEnv("DDRAGON_BASE_URL", "https://ddragon.leagueoflegends.com"),
		DBPath:            getEnv("DB_PATH", "riftlens.db"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultPatch:      getEnv("DEFAULT_PATCH", "15.10.1"),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	var err error
	if cfg.RiotRateLimit, err = strconv.ParseFloat(getEnv("RIOT_RATE_LIMIT", "20"), 64); err != nil || cfg.RiotRateLimit <= 0 {
		return nil, fmt.Errorf("RIOT_RATE_LIMIT must be a positive number")
	}
	if cfg.RiotRateBurst, err = strconv.Atoi(getEnv("RIOT_RATE_BURST", "20")); err != nil || cfg.RiotRateBurst < 1 {
		return nil, fmt.Errorf("RIOT_RATE_BURST must be a positive integer")
	}
	if cfg.IngestConcurrency, err = strconv.Atoi(getEnv("INGEST_CONCURRENCY", "4")); err != nil || cfg.IngestConcurrency < 1 {
		return nil, fmt.Errorf("INGEST_CONCURRENCY must be a positive integer")
	}
	if cfg.IngestTimelines, err = strconv.ParseBool(getEnv("INGEST_TIMELINES", "false")); err != nil {
		return nil, fmt.Errorf("INGEST_TIMELINES must be a boolean: %w", err)
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("default_patch", cfg.DefaultPatch).
		Float64("riot_rate_limit", cfg.RiotRateLimit).
		Int("ingest_concurrency", cfg.IngestConcurrency).
		Bool("ingest_timelines", cfg.IngestTimelines).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
