package classify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"syscall"
)

// Kind is the closed set of failure categories every raw error maps into.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindTimeout      Kind = "timeout"
	KindServer       Kind = "server"
	KindAPI          Kind = "api"
	KindUnknown      Kind = "unknown"
)

// DefaultCode is used when neither the status table nor the response body
// provides a machine-matchable code.
const DefaultCode = "UNKNOWN_ERROR"

// Error is the uniform representation of any failure. Message is the only
// field ever shown to a user; Code, StatusCode and Details are diagnostic.
type Error struct {
	Kind       Kind
	Message    string
	Code       string
	StatusCode int            // HTTP status if the origin was a response, 0 otherwise
	Details    map[string]any // never rendered to users
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s [%s, status %d]: %s", e.Kind, e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Code, e.Message)
}

// statusKinds maps HTTP statuses to kinds. Statuses absent from the table
// classify as KindAPI carrying the original status.
var statusKinds = map[int]Kind{
	400: KindValidation,
	401: KindUnauthorized,
	403: KindForbidden,
	404: KindNotFound,
	408: KindTimeout,
	500: KindServer,
	502: KindServer,
	503: KindServer,
	504: KindServer,
}

var statusCodes = map[Kind]string{
	KindValidation:   "VALIDATION_ERROR",
	KindUnauthorized: "UNAUTHORIZED",
	KindForbidden:    "FORBIDDEN",
	KindNotFound:     "NOT_FOUND",
	KindTimeout:      "TIMEOUT",
	KindServer:       "SERVER_ERROR",
	KindAPI:          "API_ERROR",
}

// Classify maps any failure to an *Error. It is total: every input, including
// nil, produces a valid value, and it never panics. Classifying an already
// classified error returns it unchanged.
func Classify(raw error) *Error {
	if raw == nil {
		return &Error{
			Kind:    KindUnknown,
			Message: "An unknown error occurred",
			Code:    DefaultCode,
		}
	}

	var cerr *Error
	if errors.As(raw, &cerr) {
		return cerr
	}

	var resp *ResponseError
	if errors.As(raw, &resp) {
		return fromResponse(resp)
	}

	if kind, ok := transportKind(raw); ok {
		return &Error{
			Kind:    kind,
			Message: "Network error. Please check your connection.",
			Code:    "NETWORK_ERROR",
			Details: map[string]any{"cause": raw.Error()},
		}
	}

	return &Error{
		Kind:    KindUnknown,
		Message: raw.Error(),
		Code:    DefaultCode,
		Details: map[string]any{"type": fmt.Sprintf("%T", raw)},
	}
}

func fromResponse(resp *ResponseError) *Error {
	kind, ok := statusKinds[resp.StatusCode]
	if !ok {
		kind = KindAPI
	}

	msg := resp.Body.Message
	if msg == "" {
		msg = "An unknown error occurred"
	}

	code := resp.Body.Code
	if code == "" {
		code = statusCodes[kind]
	}
	if code == "" {
		code = DefaultCode
	}

	return &Error{
		Kind:       kind,
		Message:    msg,
		Code:       code,
		StatusCode: resp.StatusCode,
		Details:    resp.Body.Details,
	}
}

// transportKind reports whether raw is a transport failure that never produced
// a response, and which kind it maps to. Timeouts are split out from generic
// connectivity failures so callers can distinguish a slow dependency from an
// unreachable one.
func transportKind(raw error) (Kind, bool) {
	if errors.Is(raw, context.DeadlineExceeded) {
		return KindTimeout, true
	}

	var netErr net.Error
	if errors.As(raw, &netErr) {
		if netErr.Timeout() {
			return KindTimeout, true
		}
		return KindNetwork, true
	}

	var urlErr *url.Error
	if errors.As(raw, &urlErr) {
		return KindNetwork, true
	}

	var errno syscall.Errno
	if errors.As(raw, &errno) {
		switch errno {
		case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.EHOSTUNREACH, syscall.ENETUNREACH, syscall.EPIPE:
			return KindNetwork, true
		}
	}

	return "", false
}

// IsUnauthorized reports whether err classifies as KindUnauthorized.
func IsUnauthorized(err error) bool {
	return Classify(err).Kind == KindUnauthorized
}

// IsNetwork reports whether err classifies as KindNetwork.
func IsNetwork(err error) bool {
	return Classify(err).Kind == KindNetwork
}

// IsRetryable reports whether a failure is worth retrying: connectivity
// problems, timeouts, server errors, and API-level throttling.
func IsRetryable(err error) bool {
	cerr := Classify(err)
	switch cerr.Kind {
	case KindNetwork, KindTimeout, KindServer:
		return true
	case KindAPI:
		return cerr.StatusCode == 429
	default:
		return false
	}
}
