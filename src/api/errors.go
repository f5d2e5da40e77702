package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx response from the backend. Detail carries the
// backend's user-facing message when the body contained one, otherwise the
// HTTP status text.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Detail)
}

// UserMessage returns the text suitable for display next to a form or in a
// toast.
func (e *APIError) UserMessage() string {
	return e.Detail
}

// decodeError consumes a non-2xx response body and builds an APIError.
// The body is optionally JSON with a "detail" field; anything else falls
// back to the HTTP status text.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Detail:     http.StatusText(resp.StatusCode),
	}
	if apiErr.Detail == "" {
		apiErr.Detail = resp.Status
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		apiErr.Detail = payload.Detail
	}

	return apiErr
}

// UserMessage extracts a display message from any error returned by this
// package. Transport errors get a generic message; the original error is the
// caller's to log.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return "The backend could not be reached. Please try again."
}
