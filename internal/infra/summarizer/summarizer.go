// Package summarizer provides text summarization implementations: a rule-based
// summarizer that needs no external service, and AI-backed adapters for the
// OpenAI and Anthropic APIs with circuit breaker and retry reliability
// patterns.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"briefing-feed/pkg/config"
)

// Summarizer condenses article text into a short summary.
type Summarizer interface {
	// Summarize returns a condensed version of the given text.
	Summarize(ctx context.Context, text string) (string, error)

	// Name identifies the provider for logging and metrics ("rule",
	// "openai", "anthropic").
	Name() string
}

// Character limit bounds shared by all providers.
const (
	defaultCharLimit = 900
	minCharLimit     = 100
	maxCharLimit     = 5000
)

// Config holds configuration shared by summarizer providers.
type Config struct {
	// CharacterLimit is the maximum number of characters allowed in a summary.
	// Valid range: 100-5000. Default: 900.
	CharacterLimit int

	// Model is the API model identifier, where applicable.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single summarization API call.
	Timeout time.Duration
}

// LoadConfigFromEnv loads summarizer configuration from environment variables.
// An out-of-range SUMMARIZER_CHAR_LIMIT falls back to the default with a
// warning log.
func LoadConfigFromEnv() Config {
	charLimit := config.GetEnvInt("SUMMARIZER_CHAR_LIMIT", defaultCharLimit)
	if charLimit < minCharLimit || charLimit > maxCharLimit {
		slog.Warn("SUMMARIZER_CHAR_LIMIT out of valid range, using default",
			slog.Int("value", charLimit),
			slog.Int("min", minCharLimit),
			slog.Int("max", maxCharLimit),
			slog.Int("default", defaultCharLimit))
		charLimit = defaultCharLimit
	}

	return Config{
		CharacterLimit: charLimit,
		Model:          config.GetEnvString("SUMMARIZER_MODEL", ""),
		MaxTokens:      config.GetEnvInt("SUMMARIZER_MAX_TOKENS", 1024),
		Timeout:        config.GetEnvDuration("SUMMARIZER_TIMEOUT", 60*time.Second),
	}
}

// NewFromEnv builds the summarizer selected by SUMMARIZER_PROVIDER
// ("rule", "openai" or "anthropic"; default "rule"). API-backed providers
// require their respective key environment variables.
func NewFromEnv() (Summarizer, error) {
	cfg := LoadConfigFromEnv()
	provider := config.GetEnvString("SUMMARIZER_PROVIDER", "rule")

	switch provider {
	case "rule":
		return NewRuleBased(cfg), nil
	case "openai":
		apiKey := config.GetEnvString("OPENAI_API_KEY", "")
		if apiKey == "" {
			return nil, fmt.Errorf("SUMMARIZER_PROVIDER=openai requires OPENAI_API_KEY")
		}
		return NewOpenAI(apiKey, cfg), nil
	case "anthropic":
		apiKey := config.GetEnvString("ANTHROPIC_API_KEY", "")
		if apiKey == "" {
			return nil, fmt.Errorf("SUMMARIZER_PROVIDER=anthropic requires ANTHROPIC_API_KEY")
		}
		return NewAnthropic(apiKey, cfg), nil
	default:
		return nil, fmt.Errorf("unknown SUMMARIZER_PROVIDER: %s", provider)
	}
}

// buildPrompt constructs the summarization prompt for the AI providers.
func buildPrompt(cfg Config, text string) string {
	return fmt.Sprintf("Summarize the following text in at most %d characters:\n%s",
		cfg.CharacterLimit, text)
}

// truncateInput caps the text sent to AI providers to avoid token limits.
const maxInputChars = 10000

// truncateInput cuts on a rune boundary so the providers never receive a
// partial UTF-8 sequence.
func truncateInput(text string) string {
	if len(text) <= maxInputChars {
		return text
	}
	cut := maxInputChars
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
