package apiclient

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/faultkit/pkg/breaker"
	"github.com/dmitrymomot/faultkit/pkg/retry"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for custom transports,
// proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// WithLogger sets the logger for retry and breaker events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		if key != "" && value != "" {
			c.headers[key] = value
		}
	}
}

// WithTokenProvider sets the source of bearer tokens for authenticated
// requests.
func WithTokenProvider(provider TokenProvider) Option {
	return func(c *Client) {
		c.token = provider
	}
}

// WithRetryOptions overrides the retry policy for all requests. The client's
// classification-aware retry predicate and logging hook stay in place unless
// explicitly replaced here.
func WithRetryOptions(opts ...retry.Option) Option {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, opts...)
	}
}

// WithNoRetry disables retries; each request gets exactly one attempt.
func WithNoRetry() Option {
	return func(c *Client) {
		c.retryOpts = append(c.retryOpts, retry.WithMaxRetries(0))
	}
}

// WithBreaker enables circuit breaker protection. The breaker is owned by
// this client; do not share one instance across clients talking to different
// dependencies.
func WithBreaker(b *breaker.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}
