package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"briefing-feed/internal/domain/entity"
)

func writeSourcesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSourcesFile(t, `
sources:
  - name: Example News
    url: https://feeds.example.com/rss
  - name: Dormant Feed
    url: https://feeds.example.com/old
    active: false
`)

	sources, err := LoadSources(path)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "Example News", sources[0].Name)
	assert.Equal(t, "https://feeds.example.com/rss", sources[0].URL)
	assert.Nil(t, sources[0].Active)

	require.NotNil(t, sources[1].Active)
	assert.False(t, *sources[1].Active)
}

func TestLoadSources_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty file", "sources: []"},
		{"missing name", "sources:\n  - url: https://feeds.example.com/rss"},
		{"bad url", "sources:\n  - name: Broken\n    url: ftp://feeds.example.com/rss"},
		{"duplicate url", `
sources:
  - name: One
    url: https://feeds.example.com/rss
  - name: Two
    url: https://feeds.example.com/rss
`},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSourcesFile(t, tt.content)
			_, err := LoadSources(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadSources_MissingFile(t *testing.T) {
	_, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSourcesPathFromEnv(t *testing.T) {
	t.Setenv("SOURCES_FILE", "")
	assert.Equal(t, DefaultSourcesPath, SourcesPathFromEnv())

	t.Setenv("SOURCES_FILE", "/etc/briefing/sources.yaml")
	assert.Equal(t, "/etc/briefing/sources.yaml", SourcesPathFromEnv())
}

type recordingSourceRepo struct {
	mu      sync.Mutex
	upserts []*entity.Source
}

func (r *recordingSourceRepo) ListActive(context.Context) ([]*entity.Source, error) {
	return nil, nil
}

func (r *recordingSourceRepo) Upsert(_ context.Context, src *entity.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts = append(r.upserts, src)
	return nil
}

func (r *recordingSourceRepo) MarkCrawled(context.Context, int64, time.Time) error { return nil }

func TestBootstrapSources(t *testing.T) {
	repo := &recordingSourceRepo{}
	inactive := false

	err := BootstrapSources(context.Background(), repo, []FeedSource{
		{Name: "Example News", URL: "https://feeds.example.com/rss"},
		{Name: "Dormant Feed", URL: "https://feeds.example.com/old", Active: &inactive},
	})
	require.NoError(t, err)

	require.Len(t, repo.upserts, 2)
	assert.True(t, repo.upserts[0].Active, "active defaults to true")
	assert.False(t, repo.upserts[1].Active)
}
