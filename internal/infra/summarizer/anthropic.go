package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sony/gobreaker"

	"briefing-feed/internal/observability/metrics"
	"briefing-feed/internal/resilience/circuitbreaker"
	"briefing-feed/internal/resilience/retry"
)

// Anthropic implements the Summarizer interface using Anthropic's messages
// API, wrapped in circuit breaker and retry logic.
type Anthropic struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
}

// NewAnthropic creates a new Anthropic summarizer with the given API key.
func NewAnthropic(apiKey string, cfg Config) *Anthropic {
	if cfg.Model == "" {
		cfg.Model = string(anthropic.ModelClaudeSonnet4_5_20250929)
	}

	slog.Info("initialized anthropic summarizer",
		slog.String("model", cfg.Model),
		slog.Int("character_limit", cfg.CharacterLimit))

	return &Anthropic{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SummarizerConfig("anthropic")),
		retryConfig:    retry.SummarizerConfig(),
		config:         cfg,
	}
}

// Name identifies the provider as "anthropic".
func (a *Anthropic) Name() string {
	return "anthropic"
}

// Summarize generates a summary of the given text using the Anthropic API.
func (a *Anthropic) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	var result string
	retryErr := retry.WithBackoff(ctx, a.retryConfig, func() error {
		cbResult, err := a.circuitBreaker.Execute(func() (interface{}, error) {
			return a.doSummarize(ctx, text)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("anthropic circuit breaker open, request rejected",
					slog.String("state", a.circuitBreaker.State().String()))
				return fmt.Errorf("anthropic api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("anthropic summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (a *Anthropic) doSummarize(ctx context.Context, text string) (string, error) {
	prompt := buildPrompt(a.config, truncateInput(text))

	start := time.Now()
	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.config.Model),
		MaxTokens: int64(a.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	metrics.RecordSummarizerDuration(a.Name(), time.Since(start))

	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}
	if len(message.Content) == 0 {
		return "", fmt.Errorf("anthropic api returned empty response")
	}

	return message.Content[0].Text, nil
}
