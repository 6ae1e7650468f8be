package breaker

import "errors"

// ErrCircuitOpen is returned when a call is rejected because the circuit is
// open. It is deliberately not one of the classify kinds; callers that feed it
// through the classification pipeline see it as an ordinary error and can
// treat it like an unavailable dependency.
var ErrCircuitOpen = errors.New("breaker: circuit breaker is open")

// IsCircuitOpen reports whether err indicates a rejected call.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
