package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DiscordConfig contains configuration for Discord webhook notifications.
type DiscordConfig struct {
	// Enabled indicates whether Discord notifications are enabled
	Enabled bool

	// WebhookURL is the Discord webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Discord API calls
	Timeout time.Duration
}

// DiscordNotifier sends briefing messages to Discord via webhook, rendered
// as embeds. Rate limited to 0.5 requests/second with burst of 3
// (Discord Webhook limit: 30 requests per minute).
type DiscordNotifier struct {
	config      DiscordConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewDiscordNotifier creates a new DiscordNotifier with the specified configuration.
func NewDiscordNotifier(config DiscordConfig) *DiscordNotifier {
	return &DiscordNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(0.5, 3), // 0.5 req/s (30 req/min), burst of 3
	}
}

// DiscordWebhookPayload represents the JSON payload sent to Discord webhook.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed represents a Discord embed message.
type DiscordEmbed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	Color       int    `json:"color"`
	Timestamp   string `json:"timestamp,omitempty"`
}

const (
	// Discord limits
	maxTitleLength       = 256
	maxDescriptionLength = 4096

	// Discord blue color (#5865F2)
	discordBlueColor = 5793266
)

// buildEmbedPayload creates a Discord webhook payload from a briefing message.
//
// The payload includes:
//   - Title: headline (truncated to 256 chars if needed)
//   - Description: detail text (truncated to fit embed limits)
//   - URL: item link, when one exists
//   - Color: Discord blue (#5865F2)
//   - Timestamp: item time in RFC3339 format
func (d *DiscordNotifier) buildEmbedPayload(msg Message) DiscordWebhookPayload {
	embed := DiscordEmbed{
		Title:       truncate(msg.Headline, maxTitleLength),
		Description: truncate(msg.Detail, maxDescriptionLength),
		URL:         msg.Link,
		Color:       discordBlueColor,
	}
	if !msg.Timestamp.IsZero() {
		embed.Timestamp = msg.Timestamp.Format(time.RFC3339)
	}

	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{embed},
	}
}

// Notify sends a Discord notification for a briefing message.
// This method implements the Notifier interface.
func (d *DiscordNotifier) Notify(ctx context.Context, msg Message) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("starting Discord notification",
		slog.String("request_id", requestID),
		slog.String("headline", msg.Headline))

	if err := d.rateLimiter.Allow(ctx); err != nil {
		slog.Error("rate limiter error",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	payload := d.buildEmbedPayload(msg)
	return sendWithRetry(ctx, "Discord", msg, func(ctx context.Context) error {
		return postJSON(ctx, d.httpClient, "Discord", d.config.WebhookURL, payload)
	})
}
