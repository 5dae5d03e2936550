package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-pay/config"
)

func env(values map[string]string) func(string) string {
	return func(k string) string { return values[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(nil))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"APP_ENV":               "production",
		"PORT":                  "9000",
		"LOG_LEVEL":             "debug",
		"RATES_FILE":            "/etc/pay/rates.json",
		"RATE_LIMIT_PER_MINUTE": "0",
		"CORS_ALLOWED_ORIGINS":  "https://a.example, https://b.example,",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/pay/rates.json", cfg.RatesFile)
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestFromEnv_BadNumber(t *testing.T) {
	_, err := config.FromEnv(env(map[string]string{"PORT": "eighty"}))
	var bad config.ErrBadValue
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "PORT", bad.Key)
}
