package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/observability/logging"
	artUC "briefing-feed/internal/usecase/article"
	digestUC "briefing-feed/internal/usecase/digest"
	"briefing-feed/internal/usecase/timeline"
)

type routerArticleRepo struct {
	latest *entity.NewsArticle
}

func (r *routerArticleRepo) List(context.Context, int) ([]*entity.NewsArticle, error) {
	if r.latest == nil {
		return nil, nil
	}
	return []*entity.NewsArticle{r.latest}, nil
}
func (r *routerArticleRepo) Get(context.Context, int64) (*entity.NewsArticle, error) {
	return r.latest, nil
}
func (r *routerArticleRepo) Latest(context.Context) (*entity.NewsArticle, error) {
	return r.latest, nil
}
func (r *routerArticleRepo) Create(context.Context, *entity.NewsArticle) error { return nil }
func (r *routerArticleRepo) ExistsByURL(context.Context, string) (bool, error) { return false, nil }

type routerTweetRepo struct {
	latest *entity.Tweet
}

func (r *routerTweetRepo) List(context.Context, int) ([]*entity.Tweet, error) { return nil, nil }
func (r *routerTweetRepo) Get(context.Context, int64) (*entity.Tweet, error)  { return nil, nil }
func (r *routerTweetRepo) Latest(context.Context) (*entity.Tweet, error)      { return r.latest, nil }
func (r *routerTweetRepo) Create(context.Context, *entity.Tweet) error        { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	mock.MatchExpectationsInOrder(false)
	mock.ExpectPing()

	articles := &routerArticleRepo{latest: &entity.NewsArticle{
		ID:          1,
		Headline:    "Penguins win the Stanley Cup Championship!",
		Location:    "Pittsburgh, PA, USA",
		Author:      "Iceburgh",
		Content:     "The best hockey team in the NHL.",
		PublishedAt: time.Now(),
	}}
	tweets := &routerTweetRepo{latest: &entity.Tweet{
		ID:        1,
		Username:  "horse_ebooks",
		Content:   "of course",
		CreatedAt: time.Now(),
	}}

	return NewRouter(Deps{
		DB:       db,
		Articles: &artUC.Service{Repo: articles},
		Timeline: &timeline.Service{Repo: tweets},
		Digest:   digestUC.NewService(articles, tweets),
		Logger:   logging.NewLogger(),
		Version:  "test",
	})
}

func TestRouter_Digest(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/digest", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var d digestUC.Digest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "article", d.Lead.Kind)
	require.NotNil(t, d.Runner)
	assert.Equal(t, "tweet", d.Runner.Kind)
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_SetsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/articles", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}
