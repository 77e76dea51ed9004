package entity

import "time"

// Source represents a news feed source in the system.
// It contains the feed URL, metadata, and crawling status information.
type Source struct {
	ID            int64
	Name          string
	FeedURL       string
	LastCrawledAt *time.Time
	Active        bool
}

// Validate validates the Source entity fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return ValidateURL(s.FeedURL)
}
