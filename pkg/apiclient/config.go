package apiclient

import (
	"time"

	"github.com/dmitrymomot/faultkit/pkg/breaker"
	"github.com/dmitrymomot/faultkit/pkg/retry"
)

// Config carries the client settings typically sourced from the environment
// via the config package.
type Config struct {
	BaseURL string        `env:"API_BASE_URL,required"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	MaxRetries         int           `env:"API_MAX_RETRIES" envDefault:"3"`
	RetryInitialDelay  time.Duration `env:"API_RETRY_INITIAL_DELAY" envDefault:"1s"`
	RetryMaxDelay      time.Duration `env:"API_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryBackoffFactor float64       `env:"API_RETRY_BACKOFF_FACTOR" envDefault:"2"`

	BreakerEnabled          bool          `env:"API_BREAKER_ENABLED" envDefault:"true"`
	BreakerFailureThreshold int           `env:"API_BREAKER_FAILURE_THRESHOLD" envDefault:"5"`
	BreakerResetTimeout     time.Duration `env:"API_BREAKER_RESET_TIMEOUT" envDefault:"60s"`
}

// NewFromConfig creates a client from environment-driven configuration.
// Additional options are applied after the config-derived ones and win on
// conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithTimeout(cfg.Timeout),
		WithRetryOptions(
			retry.WithMaxRetries(cfg.MaxRetries),
			retry.WithExponentialBackoff(cfg.RetryInitialDelay, cfg.RetryMaxDelay, cfg.RetryBackoffFactor),
		),
	}
	if cfg.BreakerEnabled {
		base = append(base, WithBreaker(
			breaker.NewBreaker(cfg.BreakerFailureThreshold, cfg.BreakerResetTimeout),
		))
	}

	return New(cfg.BaseURL, append(base, opts...)...)
}
