package summarizer

import (
	"context"
	"strings"
	"unicode/utf8"
)

// RuleBased is a summarizer that truncates text to the configured character
// limit, preferring to cut at a sentence boundary. It makes no external calls
// and serves as the default provider and the fallback when an AI provider is
// unavailable.
type RuleBased struct {
	config Config
}

// NewRuleBased creates a new rule-based summarizer.
func NewRuleBased(cfg Config) *RuleBased {
	return &RuleBased{config: cfg}
}

// Name identifies the provider as "rule".
func (r *RuleBased) Name() string {
	return "rule"
}

// Summarize returns the text truncated to the configured character limit.
// When the text must be cut, the truncation point backs up to the last
// sentence end within the limit if one exists past the halfway mark.
func (r *RuleBased) Summarize(_ context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	limit := r.config.CharacterLimit
	if limit <= 0 {
		limit = defaultCharLimit
	}

	if utf8.RuneCountInString(text) <= limit {
		return text, nil
	}

	runes := []rune(text)
	cut := limit

	// Prefer ending on a sentence boundary when one is reasonably close.
	for i := limit - 1; i >= limit/2; i-- {
		if isSentenceEnd(runes[i]) {
			return string(runes[:i+1]), nil
		}
	}

	return strings.TrimRight(string(runes[:cut]), " \t\n") + "...", nil
}

func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '。', '！', '？':
		return true
	}
	return false
}
