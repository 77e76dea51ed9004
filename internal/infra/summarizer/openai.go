package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"briefing-feed/internal/observability/metrics"
	"briefing-feed/internal/resilience/circuitbreaker"
	"briefing-feed/internal/resilience/retry"
)

// defaultOpenAIModel is used when SUMMARIZER_MODEL is not set.
const defaultOpenAIModel = openai.GPT4oMini

// OpenAI implements the Summarizer interface using OpenAI's chat completion
// API, wrapped in circuit breaker and retry logic.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
func NewOpenAI(apiKey string, cfg Config) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
	}

	slog.Info("initialized openai summarizer",
		slog.String("model", cfg.Model),
		slog.Int("character_limit", cfg.CharacterLimit))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.SummarizerConfig("openai")),
		retryConfig:    retry.SummarizerConfig(),
		config:         cfg,
	}
}

// Name identifies the provider as "openai".
func (o *OpenAI) Name() string {
	return "openai"
}

// Summarize generates a summary of the given text using the OpenAI API.
func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string
	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, text)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai circuit breaker open, request rejected",
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}
		result = cbResult.(string)
		return nil
	})
	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, text string) (string, error) {
	prompt := buildPrompt(o.config, truncateInput(text))

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	metrics.RecordSummarizerDuration(o.Name(), time.Since(start))

	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai api returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
