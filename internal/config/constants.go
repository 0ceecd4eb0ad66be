package config

// Default configuration values, overridable via environment variables.
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "leaderboard"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "leaderboard"

	DefaultDBMaxConns    = "10"
	DefaultDBMaxConnIdle = "5m"
	DefaultDBMaxConnLife = "30m"

	DefaultAllowedOrigins = "http://localhost:3000"
)
