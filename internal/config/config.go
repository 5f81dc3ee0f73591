package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/denisAlshanov/yttools/internal/utils"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	YouTube YouTubeConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type APIConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

type YouTubeConfig struct {
	OEmbedURL          string
	WatchURL           string
	TimestampLanguages []string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// API configuration
	cfg.API.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 100)
	if cfg.API.RateLimitRequests <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REQUESTS: must be positive, got %d", cfg.API.RateLimitRequests)
	}
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}
	if rateLimitWindow <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: must be positive, got %s", rateLimitWindow)
	}
	cfg.API.RateLimitWindow = rateLimitWindow

	// YouTube configuration
	cfg.YouTube.OEmbedURL = getEnv("YOUTUBE_OEMBED_URL", "https://www.youtube.com/oembed")
	cfg.YouTube.WatchURL = getEnv("YOUTUBE_WATCH_URL", "https://www.youtube.com/watch")
	cfg.YouTube.TimestampLanguages = getEnvStringSlice("YOUTUBE_TIMESTAMP_LANGUAGES", []string{"en"})

	// Logging configuration
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvStringSlice reads a comma separated variable. An unset or all-blank
// value falls back to the default.
func getEnvStringSlice(key string, defaultValue []string) []string {
	if items := utils.SplitList(os.Getenv(key)); len(items) > 0 {
		return items
	}
	return defaultValue
}
