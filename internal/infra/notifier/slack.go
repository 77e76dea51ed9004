package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Slack API calls
	Timeout time.Duration
}

// SlackNotifier sends briefing messages to Slack via Incoming Webhook,
// rendered with Block Kit. Rate limited to 1 request/second with burst of 1
// (Slack Webhook limit: 1 message per second).
type SlackNotifier struct {
	config      SlackConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewSlackNotifier creates a new SlackNotifier with the specified configuration.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(1.0, 1), // 1 req/s, burst of 1
	}
}

// SlackWebhookPayload represents the JSON payload sent to Slack webhook using Block Kit.
type SlackWebhookPayload struct {
	Text   string       `json:"text"`   // Fallback text (required)
	Blocks []SlackBlock `json:"blocks"` // Rich formatting blocks
}

// SlackBlock represents a Slack Block Kit block.
type SlackBlock struct {
	Type     string            `json:"type"`               // "section", "context", "divider"
	Text     *SlackTextObject  `json:"text,omitempty"`     // Text content (for section)
	Elements []SlackTextObject `json:"elements,omitempty"` // Elements (for context)
}

// SlackTextObject represents a text object in Slack Block Kit.
type SlackTextObject struct {
	Type string `json:"type"` // "mrkdwn" or "plain_text"
	Text string `json:"text"` // Actual text content
}

const (
	// Slack Block Kit limits
	maxSectionTextLength = 3000
	maxFallbackLength    = 150
)

// buildBlockKitPayload creates a Slack webhook payload from a briefing message.
//
// The payload includes:
//   - Text: Fallback text for notifications (the headline)
//   - Section Block: Headline (bold, linked when a link exists) + detail text
//   - Context Block: Item timestamp
func (s *SlackNotifier) buildBlockKitPayload(msg Message) SlackWebhookPayload {
	fallbackText := truncate(msg.Headline, maxFallbackLength)

	headline := fmt.Sprintf("*%s*", msg.Headline)
	if msg.Link != "" {
		headline = fmt.Sprintf("*<%s|%s>*", msg.Link, msg.Headline)
	}

	sectionText := headline
	if msg.Detail != "" {
		sectionText = fmt.Sprintf("%s\n\n%s", headline, msg.Detail)
	}
	sectionText = truncate(sectionText, maxSectionTextLength)

	blocks := []SlackBlock{
		{
			Type: "section",
			Text: &SlackTextObject{
				Type: "mrkdwn",
				Text: sectionText,
			},
		},
	}

	if !msg.Timestamp.IsZero() {
		blocks = append(blocks, SlackBlock{
			Type: "context",
			Elements: []SlackTextObject{
				{
					Type: "mrkdwn",
					Text: msg.Timestamp.Format(time.RFC3339),
				},
			},
		})
	}

	return SlackWebhookPayload{
		Text:   fallbackText,
		Blocks: blocks,
	}
}

// Notify sends a Slack notification for a briefing message.
// This method implements the Notifier interface.
//
// It performs the following steps:
//  1. Generate unique request_id for tracing
//  2. Apply rate limiting to prevent API abuse (1 req/s, burst of 1)
//  3. Send webhook request with retry logic
func (s *SlackNotifier) Notify(ctx context.Context, msg Message) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("starting Slack notification",
		slog.String("request_id", requestID),
		slog.String("headline", msg.Headline))

	if err := s.rateLimiter.Allow(ctx); err != nil {
		slog.Error("rate limiter error",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	payload := s.buildBlockKitPayload(msg)
	return sendWithRetry(ctx, "Slack", msg, func(ctx context.Context) error {
		return postJSON(ctx, s.httpClient, "Slack", s.config.WebhookURL, payload)
	})
}
