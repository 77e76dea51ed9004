package entity

import (
	"fmt"
	"time"
)

// Tweet represents a short status update posted to the timeline.
// The Reply and Retweet flags are independent; both may be set or unset.
type Tweet struct {
	ID        int64
	Username  string
	Content   string
	Reply     bool
	Retweet   bool
	CreatedAt time.Time
}

// Summarize returns the one-line brief for the tweet in the form
// "{username}: {content}".
func (t *Tweet) Summarize() string {
	return fmt.Sprintf("%s: %s", t.Username, t.Content)
}

// SummarizeAuthor returns the author handle in the form "@{username}".
func (t *Tweet) SummarizeAuthor() string {
	return fmt.Sprintf("@%s", t.Username)
}

// Validate checks the fields required before a tweet can be persisted.
func (t *Tweet) Validate() error {
	if t.Username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if t.Content == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	if len(t.Content) > maxTweetLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must not exceed %d characters", maxTweetLength),
		}
	}
	return nil
}

// maxTweetLength is the maximum accepted tweet content length.
const maxTweetLength = 280
