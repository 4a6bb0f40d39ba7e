package vkord

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rekorder/markirovka/internal/domain"
)

// StatusError reports a non-success registry response. It unwraps to the
// domain sentinel matching the HTTP status, so callers branch with
// errors.Is(err, domain.ErrNotFound) and never touch status codes.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry responded %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case 400:
		return domain.ErrBadRequest
	case 401:
		return domain.ErrUnauthorized
	case 404:
		return domain.ErrNotFound
	case 409:
		return domain.ErrConflict
	case 500:
		return domain.ErrInternal
	default:
		return domain.ErrRegistry
	}
}

// classify builds a StatusError from an error response body. The registry
// reports failures as {"error": "..."}; anything else is embedded verbatim
// so the operator sees what actually came back.
func classify(statusCode int, body []byte) error {
	msg := strings.TrimSpace(string(body))

	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		msg = parsed.Error
	}

	return &StatusError{StatusCode: statusCode, Message: msg}
}
