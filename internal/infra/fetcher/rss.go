package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/resilience/circuitbreaker"
	"briefing-feed/internal/resilience/retry"
)

// FeedItem is a single entry parsed out of an RSS/Atom feed.
type FeedItem struct {
	Headline    string
	URL         string
	Author      string
	Content     string
	PublishedAt time.Time
}

// RSSFetcher retrieves and parses RSS/Atom feeds using gofeed.
// It applies SSRF validation, a circuit breaker and retry with backoff.
// Safe for concurrent use.
type RSSFetcher struct {
	parser         *gofeed.Parser
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         Config
}

// NewRSSFetcher creates a new RSSFetcher with the given configuration.
func NewRSSFetcher(config Config) *RSSFetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = config.UserAgent
	parser.Client = newHTTPClient(config)

	return &RSSFetcher{
		parser:         parser,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
		config:         config,
	}
}

// Fetch retrieves the feed at the given URL and converts its entries to
// FeedItems. Entries without a link are skipped.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]FeedItem, error) {
	if f.config.DenyPrivateIPs {
		if err := entity.ValidateURL(feedURL); err != nil {
			return nil, fmt.Errorf("feed URL rejected: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	var feed *gofeed.Feed
	err := retry.WithBackoff(ctx, f.retryConfig, func() error {
		result, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.parser.ParseURLWithContext(feedURL, ctx)
		})
		if err != nil {
			return err
		}
		feed = result.(*gofeed.Feed)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch feed %q: %w", feedURL, err)
	}

	items := make([]FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		items = append(items, FeedItem{
			Headline:    item.Title,
			URL:         item.Link,
			Author:      itemAuthor(item),
			Content:     itemContent(item),
			PublishedAt: itemPublished(item),
		})
	}
	return items, nil
}

func itemAuthor(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0].Name != "" {
		return item.Authors[0].Name
	}
	return ""
}

func itemContent(item *gofeed.Item) string {
	if item.Content != "" {
		return item.Content
	}
	return item.Description
}

func itemPublished(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Now().UTC()
}

// newHTTPClient builds the shared HTTP client for feed and page fetching,
// with redirect limiting and SSRF validation of redirect targets.
func newHTTPClient(config Config) *http.Client {
	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= config.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", len(via))
			}
			if config.DenyPrivateIPs {
				if err := entity.ValidateURL(req.URL.String()); err != nil {
					return fmt.Errorf("redirect target rejected: %w", err)
				}
			}
			return nil
		},
	}
}
