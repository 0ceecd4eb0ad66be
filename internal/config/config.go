package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	DBMaxConns    int
	DBMaxConnIdle time.Duration
	DBMaxConnLife time.Duration

	// AllowedOrigins is the comma-separated CORS allow-list for browser clients.
	AllowedOrigins []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:      getEnv("DB_USER", DefaultDBUser),
		DBPassword:  getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:      getEnv("DB_HOST", DefaultDBHost),
		DBPort:      getEnv("DB_PORT", DefaultDBPort),
		DBName:      getEnv("DB_NAME", DefaultDBName),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", DefaultDBMaxConns))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	cfg.DBMaxConnIdle, err = time.ParseDuration(getEnv("DB_MAX_CONN_IDLE", DefaultDBMaxConnIdle))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_IDLE value: %w", err)
	}

	cfg.DBMaxConnLife, err = time.ParseDuration(getEnv("DB_MAX_CONN_LIFE", DefaultDBMaxConnLife))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONN_LIFE value: %w", err)
	}

	cfg.AllowedOrigins = splitAndTrim(getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
