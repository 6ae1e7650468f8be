package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/faultkit/pkg/config"
)

type testConfig struct {
	BaseURL    string        `env:"TEST_FAULTKIT_BASE_URL" envDefault:"https://api.example.com"`
	Timeout    time.Duration `env:"TEST_FAULTKIT_TIMEOUT" envDefault:"30s"`
	MaxRetries int           `env:"TEST_FAULTKIT_MAX_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Token string `env:"TEST_FAULTKIT_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.MaxRetries)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_FAULTKIT_TIMEOUT", "5s")
		t.Setenv("TEST_FAULTKIT_MAX_RETRIES", "7")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 7, cfg.MaxRetries)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer is rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
