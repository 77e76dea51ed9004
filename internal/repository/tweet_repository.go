package repository

import (
	"context"

	"briefing-feed/internal/domain/entity"
)

// TweetRepository provides access to persisted tweets.
type TweetRepository interface {
	// List retrieves tweets ordered by created_at descending.
	List(ctx context.Context, limit int) ([]*entity.Tweet, error)
	// Get retrieves a single tweet by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.Tweet, error)
	// Latest retrieves the most recently created tweet.
	// Returns (nil, nil) when no tweets exist.
	Latest(ctx context.Context) (*entity.Tweet, error)
	// Create persists a new tweet and sets its ID.
	Create(ctx context.Context, tweet *entity.Tweet) error
}
