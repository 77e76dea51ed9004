package notify

import "errors"

// Sentinel errors for notify use case operations.
var (
	// ErrChannelDisabled indicates that Send() was called on a disabled channel.
	ErrChannelDisabled = errors.New("channel is disabled")

	// ErrInvalidItem indicates that the item to notify about is nil or fails
	// validation (missing headline, missing username).
	ErrInvalidItem = errors.New("invalid notification item")

	// ErrNotificationDropped indicates that a notification was dropped due to
	// goroutine pool saturation or timeout waiting for a worker slot.
	ErrNotificationDropped = errors.New("notification dropped due to pool saturation")

	// ErrCircuitBreakerOpen indicates that the circuit breaker is open for this
	// channel and notifications are being rejected until the timeout elapses.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open for this channel")
)
