package movia

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid movia configuration")
	// ErrNoData indicates an empty response body where one was expected
	ErrNoData = errors.New("no response data received")
)

// RequestError indicates the request could not be built. With fixed
// endpoints this is a programming defect, not a runtime condition.
type RequestError struct {
	Path string
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("movia: invalid request for %q: %v", e.Path, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// NetworkError indicates a transport-level failure: no response was
// obtained from the server at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("movia: network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError indicates a response body was received but did not match
// the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("movia: failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ServerError represents a non-2xx response from the Movia API
type ServerError struct {
	StatusCode int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("movia API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *ServerError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *ServerError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// errorMessage extracts the best-effort message from an error response
// body: the "error" field wins over "message", then the raw body text,
// then a generic fallback.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if len(body) > 0 {
		return string(body)
	}
	return "Server error"
}
