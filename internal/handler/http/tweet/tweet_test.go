package tweet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/usecase/timeline"
)

type stubRepo struct {
	tweets []*entity.Tweet
}

func (r *stubRepo) List(_ context.Context, limit int) ([]*entity.Tweet, error) {
	if limit < len(r.tweets) {
		return r.tweets[:limit], nil
	}
	return r.tweets, nil
}

func (r *stubRepo) Get(context.Context, int64) (*entity.Tweet, error) { return nil, nil }

func (r *stubRepo) Latest(context.Context) (*entity.Tweet, error) {
	if len(r.tweets) == 0 {
		return nil, nil
	}
	return r.tweets[len(r.tweets)-1], nil
}

func (r *stubRepo) Create(_ context.Context, tweet *entity.Tweet) error {
	tweet.ID = int64(len(r.tweets) + 1)
	r.tweets = append(r.tweets, tweet)
	return nil
}

func newTestMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, &timeline.Service{Repo: repo})
	return mux
}

func bearerToken(t *testing.T) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestCreate(t *testing.T) {
	repo := &stubRepo{}
	mux := newTestMux(repo)
	token := bearerToken(t)

	body := strings.NewReader(`{"username":"horse_ebooks","content":"of course"}`)
	req := httptest.NewRequest(http.MethodPost, "/tweets", body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "horse_ebooks", out.Username)
	require.Len(t, repo.tweets, 1)
}

func TestCreate_RequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	mux := newTestMux(&stubRepo{})

	body := strings.NewReader(`{"username":"horse_ebooks","content":"of course"}`)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/tweets", body))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreate_InvalidBody(t *testing.T) {
	mux := newTestMux(&stubRepo{})
	token := bearerToken(t)

	req := httptest.NewRequest(http.MethodPost, "/tweets", strings.NewReader("{"))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreate_ValidationFailure(t *testing.T) {
	mux := newTestMux(&stubRepo{})
	token := bearerToken(t)

	req := httptest.NewRequest(http.MethodPost, "/tweets", strings.NewReader(`{"content":"no username"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatest(t *testing.T) {
	repo := &stubRepo{tweets: []*entity.Tweet{
		{ID: 1, Username: "horse_ebooks", Content: "of course, as you probably already know, people", CreatedAt: time.Now()},
	}}
	mux := newTestMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tweets/latest", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "horse_ebooks: of course, as you probably already know, people", out["summary"])
}

func TestLatest_EmptyTimeline(t *testing.T) {
	mux := newTestMux(&stubRepo{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tweets/latest", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestList(t *testing.T) {
	repo := &stubRepo{tweets: []*entity.Tweet{
		{ID: 1, Username: "a", Content: "first", CreatedAt: time.Now()},
		{ID: 2, Username: "b", Content: "second", CreatedAt: time.Now()},
	}}
	mux := newTestMux(repo)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tweets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var out []DTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}
