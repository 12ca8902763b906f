package upstream

import (
	"errors"
	"fmt"
)

// ErrMalformed marks responses whose expected payload field is missing
// or not the right shape. Wrap with %w so callers can errors.Is on it.
var ErrMalformed = errors.New("malformed upstream response")

// StatusError is returned for non-2xx upstream responses. Message is the
// display string derived from the response body's "detail" or "error"
// field when present, otherwise the HTTP status text.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %d: %s", e.StatusCode, e.Message)
}

// errorBody is the error envelope used by the upstream API. FastAPI-style
// errors carry "detail"; ad-hoc errors carry "error".
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (b errorBody) message() string {
	if b.Detail != "" {
		return b.Detail
	}
	return b.Error
}
