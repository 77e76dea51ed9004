package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSafeError_ValidationPassesThrough(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusBadRequest, errors.New("username is required"))

	assert.Equal(t, "username is required", decodeBody(t, rec)["error"])
}

func TestSafeError_InternalIsMasked(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusInternalServerError, errors.New("pq: connection refused"))

	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}

func TestSafeError_5xxAlwaysMasked(t *testing.T) {
	rec := httptest.NewRecorder()
	SafeError(rec, http.StatusBadGateway, errors.New("upstream URL is invalid"))

	assert.Equal(t, "internal server error", decodeBody(t, rec)["error"])
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"anthropic key",
			"auth failed for sk-ant-api03-abc123def",
			"auth failed for sk-ant-****",
		},
		{
			"openai key",
			"auth failed for sk-abcdefghijklmnop",
			"auth failed for sk-****",
		},
		{
			"dsn password",
			"connect postgres://app:hunter2@db:5432/briefing",
			"connect postgres://app:****@db:5432/briefing",
		},
		{
			"slack webhook",
			"post https://hooks.slack.com/services/T000/B000/xyz failed",
			"post https://hooks.slack.com/**** failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeError(errors.New(tt.in)))
		})
	}
}

func TestSanitizeError_Nil(t *testing.T) {
	assert.Equal(t, "", SanitizeError(nil))
}
