package notifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type contextKey string

// requestIDKey carries the per-notification request ID through the send path.
const requestIDKey contextKey = "notifier_request_id"

// RateLimitError represents a 429 rate limit error from a webhook service.
type RateLimitError struct {
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (retry after %v)", e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("rate limit exceeded (retry after %v)", e.RetryAfter)
}

// ClientError represents a 4xx client error from a webhook service.
type ClientError struct {
	StatusCode int
	Message    string
}

func (e *ClientError) Error() string {
	return e.Message
}

// ServerError represents a 5xx server error from a webhook service.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// asRateLimitError checks if the error is a rate limit error and extracts retry_after.
func asRateLimitError(err error) (*RateLimitError, bool) {
	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return rateLimitErr, true
	}
	return nil, false
}

// isRetryableError reports whether the error is worth retrying.
// Server errors (5xx) and network errors are retryable; client errors (4xx)
// are not, and rate limits (429) are handled separately by asRateLimitError.
func isRetryableError(err error) bool {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return true
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return false
	}

	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return false
	}

	return true
}

// webhookErrorResponse is the JSON error body returned by webhook services.
// Discord reports retry_after in seconds; Slack uses the Retry-After header.
type webhookErrorResponse struct {
	Message    string  `json:"message"`
	Code       int     `json:"code"`
	RetryAfter float64 `json:"retry_after"`
}

// extractRetryAfter pulls the retry_after duration from a 429 response,
// trying the JSON body first and the Retry-After header second.
// Defaults to 5 seconds when neither is present.
func extractRetryAfter(resp *http.Response, body []byte) time.Duration {
	var webhookErr webhookErrorResponse
	if err := json.Unmarshal(body, &webhookErr); err == nil && webhookErr.RetryAfter > 0 {
		return time.Duration(webhookErr.RetryAfter * float64(time.Second))
	}

	if retryAfterHeader := resp.Header.Get("Retry-After"); retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}

	return 5 * time.Second
}

// truncate shortens s to at most max bytes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	const suffix = "..."
	if len(s) <= max {
		return s
	}
	if max <= len(suffix) {
		return s[:max]
	}
	return s[:max-len(suffix)] + suffix
}
