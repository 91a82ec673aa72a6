package apiclient

import (
	"encoding/json"
	"fmt"
)

// AuthError indicates that credentials for a service could not be obtained.
type AuthError struct {
	Service string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed for %s: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("authentication failed for %s: no token available", e.Service)
}

func (e *AuthError) Unwrap() error { return e.Err }

// APIError is a non-2xx HTTP response. Message is the server-supplied error
// message when the body carries one, else a generic "HTTP error <status>".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// googleErrorBody matches the error envelope used by Google REST APIs.
type googleErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	var parsed googleErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		return &APIError{StatusCode: status, Message: parsed.Error.Message}
	}
	return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP error %d", status)}
}
