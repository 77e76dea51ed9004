package notify

import (
	"context"

	"briefing-feed/internal/infra/notifier"
)

// DiscordChannel adapts the Discord webhook notifier to the Channel interface.
type DiscordChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewDiscordChannel creates a new Discord channel with the specified configuration.
func NewDiscordChannel(config notifier.DiscordConfig) *DiscordChannel {
	var n notifier.Notifier
	if config.Enabled {
		n = notifier.NewDiscordNotifier(config)
	} else {
		n = notifier.NewNoOp()
	}

	return &DiscordChannel{
		notifier: n,
		enabled:  config.Enabled,
	}
}

// Name returns the channel identifier "discord".
func (c *DiscordChannel) Name() string {
	return "discord"
}

// IsEnabled returns whether Discord notifications are enabled via configuration.
func (c *DiscordChannel) IsEnabled() bool {
	return c.enabled
}

// Send delivers a briefing message to Discord. The underlying notifier handles
// rate limiting (30 req/min), retries, and request ID generation.
func (c *DiscordChannel) Send(ctx context.Context, msg notifier.Message) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if msg.Headline == "" {
		return ErrInvalidItem
	}
	return c.notifier.Notify(ctx, msg)
}
