package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Upstream UpstreamConfig
	Discord  DiscordConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

// CacheConfig bounds the in-memory image cache. CleanupProbability is the
// chance that a write triggers a full cleanup pass.
type CacheConfig struct {
	MaxEntries         int
	TTL                time.Duration
	CleanupProbability float64
}

// UpstreamConfig points at the external card artwork host. BaseURL is a
// template with {set} and {number} placeholders.
type UpstreamConfig struct {
	BaseURL      string
	FetchTimeout time.Duration
	UserAgent    string
}

type DiscordConfig struct {
	WebhookURL string
	Username   string
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

// DefaultUpstreamURL is the public CDN the proxy uses when no override is
// configured.
const DefaultUpstreamURL = "https://limitlesstcg.nyc3.cdn.digitaloceanspaces.com/tpci/{set}/{set}_{number}_R_PT.png"

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		Cache: CacheConfig{
			MaxEntries:         getIntEnv("IMAGE_CACHE_MAX_ENTRIES", 150),
			TTL:                getDurationEnv("IMAGE_CACHE_TTL", 7*24*time.Hour),
			CleanupProbability: getFloatEnv("IMAGE_CACHE_CLEANUP_PROBABILITY", 0.01),
		},
		Upstream: UpstreamConfig{
			BaseURL:      getEnv("EXTERNAL_IMAGE_CARD_SERVICE_URL", DefaultUpstreamURL),
			FetchTimeout: getDurationEnv("IMAGE_FETCH_TIMEOUT", 10*time.Second),
			UserAgent:    getEnv("IMAGE_FETCH_USER_AGENT", "Bingo-Pokemon-App/1.0"),
		},
		Discord: DiscordConfig{
			WebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),
			Username:   getEnv("DISCORD_USERNAME", "Bingo Pokemon"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
