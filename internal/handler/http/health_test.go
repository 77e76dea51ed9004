package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/usecase/notify"
)

type stubNotifyService struct {
	statuses []notify.ChannelHealthStatus
}

func (s *stubNotifyService) NotifyArticle(context.Context, *entity.NewsArticle) error { return nil }
func (s *stubNotifyService) NotifyTweet(context.Context, *entity.Tweet) error         { return nil }
func (s *stubNotifyService) GetChannelHealth() []notify.ChannelHealthStatus           { return s.statuses }
func (s *stubNotifyService) Shutdown(context.Context) error                           { return nil }

func TestHealth_NoDatabase(t *testing.T) {
	h := &HealthHandler{Version: "test"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "not configured", resp.Checks["database"].Message)
}

func TestHealth_Healthy(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	h := &HealthHandler{DB: db, Version: "test"}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Checks["database"].Status)
}

func TestHealth_ReportsOpenCircuitBreaker(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	h := &HealthHandler{
		DB: db,
		Notify: &stubNotifyService{statuses: []notify.ChannelHealthStatus{
			{Name: "slack", Enabled: true, CircuitBreakerOpen: true},
			{Name: "discord", Enabled: false},
		}},
		Version: "test",
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	// Open breakers degrade but do not fail the check
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Checks["notifications"].Status)
	assert.Equal(t, "circuit_open", resp.Checks["notifications"].Details["slack"])
	assert.Equal(t, "disabled", resp.Checks["notifications"].Details["discord"])
}
