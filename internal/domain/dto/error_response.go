package dto

import "time"

// ErrorResponse is the standardized JSON error body returned by every
// non-2xx endpoint response.
//
// Fields:
//   - Message: user-facing description of what failed.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"failed to fetch dashboard"`
	ErrorDetails string    `json:"error,omitempty" example:"context deadline exceeded"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing (e.g. gin's c.Error).
func (e ErrorResponse) Error() string {
	if e.ErrorDetails != "" {
		return e.Message + ": " + e.ErrorDetails
	}
	return e.Message
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional underlying error.
//
// Parameters:
//   - message (string): user-facing description.
//   - err (error): underlying cause; may be nil.
//
// Returns:
//   - ErrorResponse: the populated response body.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
