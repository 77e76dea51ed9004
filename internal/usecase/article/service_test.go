package article

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-feed/internal/domain/entity"
)

type stubArticleRepo struct {
	articles []*entity.NewsArticle
	listErr  error
}

func (r *stubArticleRepo) List(_ context.Context, limit int) ([]*entity.NewsArticle, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit < len(r.articles) {
		return r.articles[:limit], nil
	}
	return r.articles, nil
}

func (r *stubArticleRepo) Get(_ context.Context, id int64) (*entity.NewsArticle, error) {
	for _, a := range r.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *stubArticleRepo) Latest(context.Context) (*entity.NewsArticle, error) {
	if len(r.articles) == 0 {
		return nil, nil
	}
	return r.articles[0], nil
}

func (r *stubArticleRepo) Create(context.Context, *entity.NewsArticle) error { return nil }

func (r *stubArticleRepo) ExistsByURL(context.Context, string) (bool, error) { return false, nil }

func sampleArticle() *entity.NewsArticle {
	return &entity.NewsArticle{
		ID:          1,
		Headline:    "Penguins win the Stanley Cup Championship!",
		Location:    "Pittsburgh, PA, USA",
		Author:      "Iceburgh",
		Content:     "The Pittsburgh Penguins once again are the best hockey team in the NHL.",
		URL:         "https://news.example.com/penguins",
		PublishedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestList(t *testing.T) {
	svc := &Service{Repo: &stubArticleRepo{articles: []*entity.NewsArticle{sampleArticle()}}}

	articles, err := svc.List(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestList_RepositoryError(t *testing.T) {
	svc := &Service{Repo: &stubArticleRepo{listErr: errors.New("db down")}}

	_, err := svc.List(context.Background(), 50)
	assert.Error(t, err)
}

func TestGet(t *testing.T) {
	svc := &Service{Repo: &stubArticleRepo{articles: []*entity.NewsArticle{sampleArticle()}}}

	t.Run("found", func(t *testing.T) {
		article, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Penguins win the Stanley Cup Championship!", article.Headline)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), 42)
		assert.ErrorIs(t, err, ErrArticleNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.Get(context.Background(), -1)
		assert.ErrorIs(t, err, ErrInvalidArticleID)
	})
}

func TestGetBrief(t *testing.T) {
	svc := &Service{Repo: &stubArticleRepo{articles: []*entity.NewsArticle{sampleArticle()}}}

	b, err := svc.GetBrief(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Penguins win the Stanley Cup Championship!, by Iceburgh (Pittsburgh, PA, USA)", b.Summary)
	assert.Equal(t, "(Read more...)", b.Teaser)
}

func TestGetBrief_NotFound(t *testing.T) {
	svc := &Service{Repo: &stubArticleRepo{}}

	_, err := svc.GetBrief(context.Background(), 7)
	assert.ErrorIs(t, err, ErrArticleNotFound)
}
