package repository

import (
	"context"
	"time"

	"briefing-feed/internal/domain/entity"
)

// SourceRepository provides access to persisted feed sources.
type SourceRepository interface {
	// ListActive retrieves all sources with active = TRUE.
	ListActive(ctx context.Context) ([]*entity.Source, error)
	// Upsert inserts the source or updates its name when the feed URL
	// already exists. Used by the YAML bootstrap at worker startup.
	Upsert(ctx context.Context, source *entity.Source) error
	// MarkCrawled records the time a source was last crawled.
	MarkCrawled(ctx context.Context, id int64, at time.Time) error
}
