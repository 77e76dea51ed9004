package notify

import (
	"context"

	"briefing-feed/internal/infra/notifier"
)

// SlackChannel adapts the Slack webhook notifier to the Channel interface.
// If Slack notifications are disabled, a NoOp notifier is used so the
// interface contract is always satisfied without nil checks.
type SlackChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewSlackChannel creates a new Slack channel with the specified configuration.
func NewSlackChannel(config notifier.SlackConfig) *SlackChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewSlackNotifier(config)
	} else {
		n = notifier.NewNoOp()
	}

	return &SlackChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "slack".
func (c *SlackChannel) Name() string {
	return "slack"
}

// IsEnabled returns whether Slack notifications are enabled via configuration.
func (c *SlackChannel) IsEnabled() bool {
	return c.enabled
}

// Send delivers a briefing message to Slack. The underlying notifier handles
// rate limiting (1 req/s), retries, and request ID generation.
func (c *SlackChannel) Send(ctx context.Context, msg notifier.Message) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if msg.Headline == "" {
		return ErrInvalidItem
	}
	return c.notifier.Notify(ctx, msg)
}
