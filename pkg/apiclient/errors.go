package apiclient

import "errors"

var (
	// ErrInvalidBaseURL indicates the configured base URL is unusable.
	ErrInvalidBaseURL = errors.New("apiclient: invalid base URL")

	// ErrInvalidRequest indicates the request could not be constructed.
	ErrInvalidRequest = errors.New("apiclient: invalid request")

	// ErrEncodePayload indicates the request body could not be marshaled.
	ErrEncodePayload = errors.New("apiclient: failed to encode request payload")

	// ErrDecodeResponse indicates a successful response carried a body that
	// could not be unmarshaled into the caller's type.
	ErrDecodeResponse = errors.New("apiclient: failed to decode response body")

	// ErrReadResponse indicates the response body could not be read.
	ErrReadResponse = errors.New("apiclient: failed to read response body")

	// ErrTokenUnavailable indicates the token provider failed; the request
	// was not sent.
	ErrTokenUnavailable = errors.New("apiclient: auth token unavailable")
)
