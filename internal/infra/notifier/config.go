package notifier

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"briefing-feed/pkg/config"
)

const defaultWebhookTimeout = 30 * time.Second

// LoadSlackConfigFromEnv builds the Slack webhook configuration from
// SLACK_ENABLED and SLACK_WEBHOOK_URL. A malformed or non-Slack URL disables
// the channel with a warning instead of failing startup.
func LoadSlackConfigFromEnv() SlackConfig {
	if !config.GetEnvBool("SLACK_ENABLED", false) {
		return SlackConfig{Enabled: false}
	}

	webhookURL := config.GetEnvString("SLACK_WEBHOOK_URL", "")
	if !validWebhookURL(webhookURL, "hooks.slack.com", "/services/") {
		slog.Warn("invalid Slack webhook URL, disabling channel")
		return SlackConfig{Enabled: false}
	}

	return SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    config.GetEnvDuration("SLACK_TIMEOUT", defaultWebhookTimeout),
	}
}

// LoadDiscordConfigFromEnv builds the Discord webhook configuration from
// DISCORD_ENABLED and DISCORD_WEBHOOK_URL, with the same fail-soft validation
// as the Slack loader.
func LoadDiscordConfigFromEnv() DiscordConfig {
	if !config.GetEnvBool("DISCORD_ENABLED", false) {
		return DiscordConfig{Enabled: false}
	}

	webhookURL := config.GetEnvString("DISCORD_WEBHOOK_URL", "")
	if !validWebhookURL(webhookURL, "discord.com", "/api/webhooks/") {
		slog.Warn("invalid Discord webhook URL, disabling channel")
		return DiscordConfig{Enabled: false}
	}

	return DiscordConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    config.GetEnvDuration("DISCORD_TIMEOUT", defaultWebhookTimeout),
	}
}

// validWebhookURL checks that raw is an HTTPS URL on the expected host with
// the expected path prefix.
func validWebhookURL(raw, host, pathPrefix string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "https" && u.Host == host && strings.HasPrefix(u.Path, pathPrefix)
}
