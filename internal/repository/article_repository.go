// Package repository defines the persistence interfaces used by the use case
// layer. Concrete adapters live under internal/infra/persistence.
package repository

import (
	"context"

	"briefing-feed/internal/domain/entity"
)

// ArticleRepository provides access to persisted news articles.
type ArticleRepository interface {
	// List retrieves articles ordered by published_at descending.
	List(ctx context.Context, limit int) ([]*entity.NewsArticle, error)
	// Get retrieves a single article by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id int64) (*entity.NewsArticle, error)
	// Latest retrieves the most recently published article.
	// Returns (nil, nil) when no articles exist.
	Latest(ctx context.Context) (*entity.NewsArticle, error)
	// Create persists a new article and sets its ID.
	Create(ctx context.Context, article *entity.NewsArticle) error
	// ExistsByURL reports whether any article exists with the given URL.
	ExistsByURL(ctx context.Context, url string) (bool, error)
}
