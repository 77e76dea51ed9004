// Package article provides read-side use cases for stored news articles.
package article

import (
	"context"
	"fmt"

	"briefing-feed/internal/domain/brief"
	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/observability/metrics"
	"briefing-feed/internal/repository"
)

// Service provides article query use cases. It handles business logic for
// article reads and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Brief is the briefing view of a single article.
type Brief struct {
	Summary string `json:"summary"`
	Teaser  string `json:"teaser"`
}

// List retrieves recent articles, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]*entity.NewsArticle, error) {
	articles, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not positive.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.NewsArticle, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetBrief retrieves the briefing view of a single article: its one-line
// summary and the teaser text.
func (s *Service) GetBrief(ctx context.Context, id int64) (*Brief, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordBriefGenerated("article", true)
	return &Brief{
		Summary: article.Summarize(),
		Teaser:  brief.Teaser(article),
	}, nil
}
