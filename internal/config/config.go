// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Optional: when set, visa
	// records are read from the visa_records table instead of the YAML table.
	DatabaseURL string

	// VisaTablePath points at a YAML visa table that replaces the embedded one.
	// Ignored when DatabaseURL is set.
	VisaTablePath string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// GenerationDelay is the simulated latency of every document generation.
	// Defaults to 500ms; "0s" disables it.
	GenerationDelay time.Duration

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// PlanTTL is how long a plan is kept after submission. Defaults to 1h.
	PlanTTL time.Duration
}

// Load reads configuration from environment variables and returns a Config.
// Returns one error naming every variable whose value could not be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		VisaTablePath: os.Getenv("VISA_TABLE_PATH"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	var err error
	if cfg.GenerationDelay, err = getDuration("GENERATION_DELAY", 500*time.Millisecond); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.PlanTTL, err = getDuration("PLAN_TTL", time.Hour); err != nil {
		invalid = append(invalid, err.Error())
	} else if cfg.PlanTTL <= 0 {
		invalid = append(invalid, "PLAN_TTL: must be positive")
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		invalid = append(invalid, err.Error())
	} else if cfg.MaxBodyBytes <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES: must be positive")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		invalid = append(invalid, fmt.Sprintf("PORT: %q is not a number", cfg.Port))
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return fallback, fmt.Errorf("%s: %q is not a non-negative duration", key, v)
	}
	return d, nil
}

func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %q is not a number", key, v)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
