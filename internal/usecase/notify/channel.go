// Package notify provides use cases for dispatching briefing notifications
// across multiple channels. It formats alert headlines from items that can
// summarize themselves and fans messages out to delivery channels (Slack,
// Discord) with a bounded worker pool, per-channel circuit breakers, and
// observability.
package notify

import (
	"context"

	"briefing-feed/internal/infra/notifier"
)

// Channel represents a notification delivery channel (Slack, Discord, etc.).
// Each channel implementation handles its own rate limiting, retries, and
// error handling.
//
// Retry Policy Contract:
//   - Transient failures (5xx, network errors): retry with backoff (max 2 attempts)
//   - Rate limits (429): sleep for retry_after duration, then retry
//   - Client errors (4xx except 429): no retry
//   - Context timeout: no retry
//
// All methods must be safe for concurrent use by multiple goroutines, and
// implementations must respect context cancellation.
type Channel interface {
	// Name returns the channel identifier (lowercase, alphanumeric).
	// Used for logging, metrics labels, and health check endpoints.
	Name() string

	// IsEnabled returns true if this channel is enabled via configuration.
	// Disabled channels are skipped during dispatching.
	IsEnabled() bool

	// Send delivers a briefing message to this channel.
	// Returns a non-nil error if delivery failed after all retries, or
	// ErrChannelDisabled when called on a disabled channel.
	Send(ctx context.Context, msg notifier.Message) error
}
