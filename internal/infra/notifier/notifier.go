// Package notifier delivers briefing messages to external webhook services.
// It defines the Notifier interface which allows different delivery mechanisms
// (Discord, Slack, a no-op for disabled channels) to be used interchangeably.
package notifier

import (
	"context"
	"time"
)

// Message is a briefing notification ready for delivery.
type Message struct {
	// Headline is the lead line, e.g. "Breaking news! ..." or "1 new tweet: ...".
	Headline string

	// Detail is the supporting text shown below the headline. May be empty.
	Detail string

	// Link points at the underlying item, when one exists.
	Link string

	// Timestamp is when the underlying item was published or created.
	Timestamp time.Time
}

// Notifier sends briefing messages to a delivery target.
// Implementations handle rate limiting, retries, and error logging internally,
// generate a request ID for tracing, and respect context cancellation.
type Notifier interface {
	// Notify delivers the message. Returns a non-nil error if delivery
	// failed after all retry attempts.
	Notify(ctx context.Context, msg Message) error
}

// NoOp is a Notifier that does nothing, used for disabled channels so
// callers never need nil checks.
type NoOp struct{}

// NewNoOp creates a new no-op notifier.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Notify discards the message.
func (*NoOp) Notify(context.Context, Message) error {
	return nil
}
