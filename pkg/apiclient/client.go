package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/faultkit/pkg/breaker"
	"github.com/dmitrymomot/faultkit/pkg/classify"
	"github.com/dmitrymomot/faultkit/pkg/logger"
	"github.com/dmitrymomot/faultkit/pkg/retry"
)

// Client is a JSON API client with retry, classification, and circuit breaker
// support baked in. Zero value is not usable; use New to create instances.
type Client struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger

	retryOpts []retry.Option
	breaker   *breaker.Breaker

	token   TokenProvider
	headers map[string]string
}

// TokenProvider supplies the bearer token for authenticated requests. The
// session package's stores are the usual source.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a closure into a TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

func (f TokenProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log:     slog.Default(),
		headers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func validateBaseURL(baseURL string) error {
	if baseURL == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidBaseURL)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}
	return nil
}

// Get issues a GET request and decodes the response body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH request with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do runs a single logical request through the retry scheduler. Each attempt
// passes through the circuit breaker when one is configured; an open circuit
// fails the whole call fast since backing off would not change the outcome
// within the retry window.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodePayload, err)
		}
	}

	retryOpts := append([]retry.Option{
		retry.WithRetryIf(func(err error) bool {
			if breaker.IsCircuitOpen(err) {
				return false
			}
			return classify.IsRetryable(err)
		}),
		retry.WithOnRetry(func(attempt int, err error) {
			c.log.WarnContext(ctx, "retrying api request",
				slog.String("method", method),
				slog.String("path", path),
				logger.Attempt(attempt),
				logger.Error(err),
			)
		}),
	}, c.retryOpts...)

	_, err := retry.Do(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.attempt(ctx, method, path, payload, out)
	}, retryOpts...)
	return err
}

// attempt performs one HTTP round trip and converts its outcome into the two
// raw failure shapes the classifier understands: *classify.ResponseError for
// non-2xx responses and the unwrapped transport error otherwise.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) error {
	if c.breaker != nil && !c.breaker.Allow() {
		return breaker.ErrCircuitOpen
	}

	err := c.roundTrip(ctx, method, path, payload, out)

	if c.breaker != nil {
		if err != nil {
			if c.breaker.RecordFailure() {
				c.log.WarnContext(ctx, "circuit breaker opened for api endpoint",
					slog.String("method", method),
					slog.String("path", path),
					logger.BreakerState(c.breaker.State().String()),
				)
			}
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any) error {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	if c.token != nil {
		token, err := c.token.Token(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTokenUnavailable, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// Transport failure with no response: returned raw so the
		// classifier's network branch sees the original error.
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body classify.ErrorBody
		// A non-JSON error body is fine; classification falls back to
		// generic values for the missing fields.
		_ = json.Unmarshal(respBody, &body)
		return &classify.ResponseError{StatusCode: resp.StatusCode, Body: body}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.Join(ErrDecodeResponse, err)
		}
	}
	return nil
}

// maxResponseSize caps response reads at 10MB to avoid unbounded allocation
// from a misbehaving server.
const maxResponseSize = 10 << 20
