package unsplash

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DMarby/unsplash-tool/internal/params"
)

// ValidationError is returned for missing or invalid input, before any request is made
type ValidationError = params.ValidationError

var (
	errNotAPhoto = errors.New("response is not a photo object or list")
	errNoResults = errors.New("search response has no results")
)

// UpstreamError is returned when Unsplash answers with a non-success status or a body that can't be decoded
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// TransportError is returned when the request could not be completed at the network level
// The cause is kept for logging, but never shown to the end user
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorBody is the error document Unsplash returns, e.g. {"errors": ["OAuth error: The access token is invalid"]}
type errorBody struct {
	Errors []string `json:"errors"`
}

func newUpstreamError(statusCode int, body []byte) *UpstreamError {
	detail := providerMessage(body)

	var message string
	switch statusCode {
	case http.StatusUnauthorized:
		message = "Unsplash authentication failed, invalid access key"
	case http.StatusForbidden:
		message = "Unsplash API permission denied, please check your application status"
	case http.StatusTooManyRequests:
		message = "Exceeded Unsplash API request limit, please try again later"
	default:
		message = fmt.Sprintf("API request failed, status code: %d, error: %s", statusCode, detail)
		return &UpstreamError{StatusCode: statusCode, Message: message}
	}

	if detail != "" {
		message = fmt.Sprintf("%s: %s", message, detail)
	}

	return &UpstreamError{StatusCode: statusCode, Message: message}
}

func providerMessage(body []byte) string {
	var e errorBody
	if err := json.Unmarshal(body, &e); err == nil && len(e.Errors) > 0 {
		return strings.Join(e.Errors, "; ")
	}

	message := strings.TrimSpace(string(body))
	if len(message) > maxErrorMessageLength {
		message = message[:maxErrorMessageLength] + "..."
	}

	return message
}

func malformedResponse(statusCode int) *UpstreamError {
	return &UpstreamError{
		StatusCode: statusCode,
		Message:    "malformed response from Unsplash",
	}
}
