// Package postgres implements the repository interfaces on PostgreSQL
// via database/sql and the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context, limit int) ([]*entity.NewsArticle, error) {
	const query = `
SELECT id, source_id, headline, location, author, content, url, published_at, created_at
FROM articles
ORDER BY published_at DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.NewsArticle, 0, limit)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: %w", err)
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.NewsArticle, error) {
	const query = `
SELECT id, source_id, headline, location, author, content, url, published_at, created_at
FROM articles
WHERE id = $1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Latest(ctx context.Context) (*entity.NewsArticle, error) {
	const query = `
SELECT id, source_id, headline, location, author, content, url, published_at, created_at
FROM articles
ORDER BY published_at DESC
LIMIT 1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Latest: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.NewsArticle) error {
	const query = `
INSERT INTO articles (source_id, headline, location, author, content, url, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.SourceID, article.Headline, article.Location, article.Author,
		article.Content, article.URL, article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) ExistsByURL(ctx context.Context, url string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE url = $1)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, url).Scan(&exists); err != nil {
		return false, fmt.Errorf("ExistsByURL: %w", err)
	}
	return exists, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.NewsArticle, error) {
	var article entity.NewsArticle
	err := row.Scan(&article.ID, &article.SourceID, &article.Headline,
		&article.Location, &article.Author, &article.Content,
		&article.URL, &article.PublishedAt, &article.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
