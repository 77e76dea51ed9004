package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrInvalidArticleID indicates a non-positive article ID.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")
)
