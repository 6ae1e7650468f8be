package logger

import (
	"log/slog"

	"github.com/dmitrymomot/faultkit/pkg/classify"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Classified groups a classified error's diagnostic fields under "error".
// The user-facing message is included; Details are deliberately omitted so
// accidental logging of sensitive payloads requires an explicit attr.
func Classified(cerr *classify.Error) slog.Attr {
	if cerr == nil {
		return slog.Attr{}
	}
	attrs := []slog.Attr{
		slog.String("kind", string(cerr.Kind)),
		slog.String("code", cerr.Code),
		slog.String("message", cerr.Message),
	}
	if cerr.StatusCode > 0 {
		attrs = append(attrs, slog.Int("status_code", cerr.StatusCode))
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// Attempt records a retry attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Component records the emitting subsystem under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// BreakerState records a circuit breaker state under the key "breaker_state".
func BreakerState(state string) slog.Attr {
	return slog.String("breaker_state", state)
}
