package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable     = errors.New("server unavailable")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrBadRequest      = errors.New("bad request")
	ErrServer          = errors.New("server error")
	ErrInvalidResponse = errors.New("invalid response")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Body       []byte

	kind error
}

// NewAPIError classifies a response by status code.
func NewAPIError(status int, body []byte) *APIError {
	var kind error
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		kind = ErrUnauthorized
	case status >= 500:
		kind = ErrServer
	default:
		kind = ErrBadRequest
	}
	return &APIError{StatusCode: status, Body: body, kind: kind}
}

func (e *APIError) Error() string {
	msg := e.Message()
	if msg == "" {
		return fmt.Sprintf("%s: status %d", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s: status %d: %s", e.kind, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// Message extracts a human-readable message from the response body. The
// body may be a JSON string, a JSON object with one of the usual message
// fields, or plain text. It returns "" when the body carries nothing usable.
func (e *APIError) Message() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		return ""
	}

	var s string
	if err := json.Unmarshal(e.Body, &s); err == nil {
		return s
	}

	var obj map[string]any
	if err := json.Unmarshal(e.Body, &obj); err == nil {
		for _, k := range []string{"message", "error", "title", "detail"} {
			if v, ok := obj[k].(string); ok && v != "" {
				return v
			}
		}
	}

	return body
}
