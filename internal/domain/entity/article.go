// Package entity defines the core domain entities for the briefing service.
// It contains the fundamental business objects such as NewsArticle, Tweet and
// Source, along with their validation rules and domain-specific errors.
package entity

import (
	"fmt"
	"time"
)

// NewsArticle represents a news article collected from a feed source.
// The headline, author and location fields feed the one-line brief that the
// service produces for every article.
type NewsArticle struct {
	ID          int64
	SourceID    int64
	Headline    string
	Location    string
	Author      string
	Content     string
	URL         string
	PublishedAt time.Time
	CreatedAt   time.Time
}

// Summarize returns the one-line brief for the article in the form
// "{headline}, by {author} ({location})".
func (a *NewsArticle) Summarize() string {
	return fmt.Sprintf("%s, by %s (%s)", a.Headline, a.Author, a.Location)
}

// Validate checks the fields required before an article can be persisted.
// Returns a ValidationError describing the first failing field.
func (a *NewsArticle) Validate() error {
	if a.Headline == "" {
		return &ValidationError{Field: "headline", Message: "is required"}
	}
	if a.URL != "" {
		if err := ValidateURL(a.URL); err != nil {
			return err
		}
	}
	return nil
}
