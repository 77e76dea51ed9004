package timeline

import "errors"

// Sentinel errors for timeline use case operations.
var (
	// ErrInvalidTweet indicates the posted tweet failed validation.
	ErrInvalidTweet = errors.New("invalid tweet")

	// ErrInvalidTweetID indicates a non-positive tweet ID.
	ErrInvalidTweetID = errors.New("invalid tweet ID")

	// ErrTweetNotFound indicates the requested tweet does not exist.
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrEmptyTimeline indicates there are no tweets to brief.
	ErrEmptyTimeline = errors.New("timeline is empty")
)
