// Package config loads the feed source list from a YAML file and seeds the
// source store at worker startup.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/repository"
	"briefing-feed/pkg/config"
)

// DefaultSourcesPath is used when SOURCES_FILE is not set.
const DefaultSourcesPath = "configs/sources.yaml"

// FeedSource is one entry of the sources file.
type FeedSource struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Active *bool  `yaml:"active"` // defaults to true when omitted
}

// sourcesFile is the top-level YAML document.
type sourcesFile struct {
	Sources []FeedSource `yaml:"sources"`
}

// SourcesPathFromEnv returns the sources file path, honoring SOURCES_FILE.
func SourcesPathFromEnv() string {
	return config.GetEnvString("SOURCES_FILE", DefaultSourcesPath)
}

// LoadSources reads and validates the feed source list from path.
// Every entry must carry a name and a well-formed http(s) URL.
func LoadSources(path string) ([]FeedSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var file sourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	if len(file.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s declares no sources", path)
	}

	seen := make(map[string]bool, len(file.Sources))
	for i, src := range file.Sources {
		if src.Name == "" {
			return nil, fmt.Errorf("source %d: name is required", i)
		}
		if err := entity.ValidateURL(src.URL); err != nil {
			return nil, fmt.Errorf("source %q: %w", src.Name, err)
		}
		if seen[src.URL] {
			return nil, fmt.Errorf("source %q: duplicate url %s", src.Name, src.URL)
		}
		seen[src.URL] = true
	}

	return file.Sources, nil
}

// BootstrapSources upserts the configured sources into the store so the
// crawler picks them up. Existing sources keep their crawl timestamps; only
// name and active state follow the file.
func BootstrapSources(ctx context.Context, repo repository.SourceRepository, sources []FeedSource) error {
	for _, src := range sources {
		active := true
		if src.Active != nil {
			active = *src.Active
		}

		if err := repo.Upsert(ctx, &entity.Source{
			Name:    src.Name,
			FeedURL: src.URL,
			Active:  active,
		}); err != nil {
			return fmt.Errorf("upsert source %q: %w", src.Name, err)
		}
	}

	slog.Info("feed sources bootstrapped", slog.Int("count", len(sources)))
	return nil
}
