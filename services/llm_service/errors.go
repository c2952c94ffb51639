package llm_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

var (
	// ErrUnavailable covers transport-level failures reaching the model API.
	ErrUnavailable = errors.New("llm service unavailable")
	// ErrTimeout covers requests cut short by a deadline.
	ErrTimeout = errors.New("llm request timed out")
)

// APIError represents a non-2xx reply from a model API. The raw body is kept
// for logging; the message never contains the API key.
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	ErrorType  string
	RawBody    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (HTTP %d): %s (Type: %s)", e.Service, e.StatusCode, e.Message, e.ErrorType)
}

// apiErrorBody is the error envelope shared by the OpenAI-style APIs.
type apiErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Status  string `json:"status"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// newAPIError builds an APIError from an HTTP error response, falling back
// to the raw body when the error envelope cannot be parsed.
func newAPIError(service string, resp *http.Response) *APIError {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &APIError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Message:    "unexpected error response",
		RawBody:    string(body),
	}

	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		apiErr.Message = parsed.Error.Message
		apiErr.ErrorType = parsed.Error.Type
		if apiErr.ErrorType == "" {
			apiErr.ErrorType = parsed.Error.Status
		}
	}

	return apiErr
}

// classifyTransportError maps a failed round trip onto the timeout or
// unavailable sentinel so callers can translate it without string matching.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
