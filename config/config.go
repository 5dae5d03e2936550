// Package config loads process configuration from the environment.
// A .env file in the working directory is read first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string // "production" switches logging to JSON
	Port     int
	LogLevel string

	// RatesFile is an optional JSON rate table; empty means default rates.
	RatesFile string

	RateLimitPerMinute     int
	AllowedOrigins         []string
	ShutdownTimeoutSeconds int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Env:                    "development",
		Port:                   8080,
		LogLevel:               "info",
		RateLimitPerMinute:     120,
		AllowedOrigins:         []string{"http://localhost:5173", "http://localhost:8080"},
		ShutdownTimeoutSeconds: 30,
	}
}

// Load reads .env (if any) and the environment on top of Default.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	if v := getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.RatesFile = getenv("RATES_FILE")

	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PORT", &cfg.Port},
		{"RATE_LIMIT_PER_MINUTE", &cfg.RateLimitPerMinute},
		{"SHUTDOWN_TIMEOUT_SECONDS", &cfg.ShutdownTimeoutSeconds},
	}
	for _, it := range ints {
		v := getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, ErrBadValue{Key: it.key, Value: v}
		}
		*it.dst = n
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type ErrBadValue struct {
	Key   string
	Value string
}

func (e ErrBadValue) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}
