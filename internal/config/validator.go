package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration for values that would prevent the
// service from starting correctly.
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	if c.DBMaxConns <= 0 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}

	if c.DBName == "" {
		problems = append(problems, "DB_NAME must not be empty")
	}

	if c.DBHost == "" {
		problems = append(problems, "DB_HOST must not be empty")
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be json or text, got %q", c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return nil
}
