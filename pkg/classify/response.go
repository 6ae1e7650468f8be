package classify

import "fmt"

// ErrorBody is the error payload shape the API returns alongside non-2xx
// statuses. All fields are optional; absent fields fall back to generic values
// during classification.
type ErrorBody struct {
	Message string         `json:"message,omitempty"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// ResponseError is a raw HTTP response failure: the request reached the server
// and came back with a non-2xx status. Transport failures that never produced
// a response are plain errors and take the network classification path.
type ResponseError struct {
	StatusCode int
	Body       ErrorBody
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Body.Message)
	}
	return fmt.Sprintf("http %d", e.StatusCode)
}
