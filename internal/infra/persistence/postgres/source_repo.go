package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/repository"
)

type SourceRepo struct {
	db *sql.DB
}

func NewSourceRepo(db *sql.DB) repository.SourceRepository {
	return &SourceRepo{db: db}
}

func (repo *SourceRepo) ListActive(ctx context.Context) ([]*entity.Source, error) {
	const query = `
SELECT id, name, feed_url, last_crawled_at, active
FROM sources
WHERE active = TRUE
ORDER BY id`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListActive: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sources []*entity.Source
	for rows.Next() {
		var source entity.Source
		var lastCrawledAt sql.NullTime
		if err := rows.Scan(&source.ID, &source.Name, &source.FeedURL,
			&lastCrawledAt, &source.Active); err != nil {
			return nil, fmt.Errorf("ListActive: Scan: %w", err)
		}
		if lastCrawledAt.Valid {
			t := lastCrawledAt.Time
			source.LastCrawledAt = &t
		}
		sources = append(sources, &source)
	}
	return sources, rows.Err()
}

func (repo *SourceRepo) Upsert(ctx context.Context, source *entity.Source) error {
	const query = `
INSERT INTO sources (name, feed_url, active)
VALUES ($1, $2, $3)
ON CONFLICT (feed_url) DO UPDATE SET name = EXCLUDED.name, active = EXCLUDED.active
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		source.Name, source.FeedURL, source.Active,
	).Scan(&source.ID)
	if err != nil {
		return fmt.Errorf("Upsert: %w", err)
	}
	return nil
}

func (repo *SourceRepo) MarkCrawled(ctx context.Context, id int64, at time.Time) error {
	const query = `UPDATE sources SET last_crawled_at = $1 WHERE id = $2`
	if _, err := repo.db.ExecContext(ctx, query, at, id); err != nil {
		return fmt.Errorf("MarkCrawled: %w", err)
	}
	return nil
}
