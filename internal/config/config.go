// internal/config/config.go

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Twitter     TwitterConfig
	Analysis    AnalysisConfig
	Database    DatabaseConfig
	NATS        NATSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// TwitterConfig holds the upstream API credentials
type TwitterConfig struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// AnalysisConfig holds sentiment pipeline configuration
type AnalysisConfig struct {
	CacheTTL            time.Duration
	CacheCapacity       int
	HistorySize         int
	MinRequestInterval  time.Duration
	FallbackEnabled     bool
	FallbackOnRateLimit bool
	EventsTopic         string
}

// DatabaseConfig holds the optional durable store configuration
type DatabaseConfig struct {
	Enabled      bool
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	SSLMode      string
}

// NATSConfig holds the optional event bus configuration
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// Load loads configuration from environment variables
func Load() (Config, error) {
	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Twitter: TwitterConfig{
			APIKey:       getEnv("TWITTER_API_KEY", ""),
			APISecret:    getEnv("TWITTER_API_SECRET", ""),
			AccessToken:  getEnv("TWITTER_ACCESS_TOKEN", ""),
			AccessSecret: getEnv("TWITTER_ACCESS_SECRET", ""),
		},
		Analysis: AnalysisConfig{
			CacheTTL:            getEnvAsDuration("ANALYSIS_CACHE_TTL", 5*time.Minute),
			CacheCapacity:       getEnvAsInt("ANALYSIS_CACHE_CAPACITY", 100),
			HistorySize:         getEnvAsInt("ANALYSIS_HISTORY_SIZE", 10),
			MinRequestInterval:  getEnvAsDuration("ANALYSIS_MIN_REQUEST_INTERVAL", 2*time.Second),
			FallbackEnabled:     getEnvAsBool("ANALYSIS_FALLBACK_ENABLED", true),
			FallbackOnRateLimit: getEnvAsBool("ANALYSIS_FALLBACK_ON_RATE_LIMIT", false),
			EventsTopic:         getEnv("ANALYSIS_EVENTS_TOPIC", "analysis.completed"),
		},
		Database: DatabaseConfig{
			Enabled:      getEnvAsBool("DB_ENABLED", false),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Database:     getEnv("DB_NAME", "tweetpulse"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", ""),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
		},
	}

	return config, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
