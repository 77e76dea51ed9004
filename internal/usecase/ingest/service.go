// Package ingest provides the feed crawling use case. It orchestrates
// fetching RSS/Atom feeds, enriching articles with page metadata,
// summarizing content, storing new articles, and dispatching notifications.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/infra/fetcher"
	"briefing-feed/internal/observability/metrics"
	"briefing-feed/internal/repository"
	"briefing-feed/internal/usecase/notify"
)

const (
	summarizerParallelism = 5 // Summarization parallelism (rate-limited upstream)
)

// FeedFetcher retrieves and parses a feed from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]fetcher.FeedItem, error)
}

// Enricher extracts author, location, and body text from an article page.
type Enricher interface {
	Enrich(ctx context.Context, pageURL string) (*fetcher.PageMetadata, error)
}

// Summarizer condenses article text for storage and display.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Config holds ingest pipeline tuning knobs.
type Config struct {
	// EnrichParallelism bounds concurrent page enrichment fetches.
	EnrichParallelism int
	// EnrichThreshold is the minimum feed content length below which the
	// article page is fetched for full text.
	EnrichThreshold int
}

// Service crawls all active feed sources and turns feed items into stored,
// summarized, announced articles.
type Service struct {
	SourceRepo    repository.SourceRepository
	ArticleRepo   repository.ArticleRepository
	FeedFetcher   FeedFetcher
	Enricher      Enricher
	Summarizer    Summarizer
	NotifyService notify.Service
	config        Config
}

// NewService creates a new ingest Service. Enricher may be nil to disable
// page enrichment.
func NewService(
	sourceRepo repository.SourceRepository,
	articleRepo repository.ArticleRepository,
	feedFetcher FeedFetcher,
	enricher Enricher,
	summarizer Summarizer,
	notifyService notify.Service,
	config Config,
) *Service {
	if config.EnrichParallelism <= 0 {
		config.EnrichParallelism = 4
	}
	return &Service{
		SourceRepo:    sourceRepo,
		ArticleRepo:   articleRepo,
		FeedFetcher:   feedFetcher,
		Enricher:      enricher,
		Summarizer:    summarizer,
		NotifyService: notifyService,
		config:        config,
	}
}

// CrawlStats contains statistics about a crawl operation.
type CrawlStats struct {
	Sources         int
	FeedItems       int64
	Inserted        int64
	Duplicated      int64
	SummarizeErrors int64
	Duration        time.Duration
}

// CrawlAllSources fetches and processes articles from all active sources.
// For each source it fetches the feed, skips already-stored URLs, enriches
// and summarizes new items in parallel, stores them, and dispatches
// notifications. A failing source is logged and skipped; the crawl continues.
func (s *Service) CrawlAllSources(ctx context.Context) (*CrawlStats, error) {
	startAll := time.Now()
	stats := &CrawlStats{}

	srcs, err := s.SourceRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}
	stats.Sources = len(srcs)

	for _, src := range srcs {
		if err := s.crawlSource(ctx, src, stats); err != nil {
			return stats, err
		}
	}

	stats.Duration = time.Since(startAll)
	slog.Info("crawl completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("summarize_errors", stats.SummarizeErrors),
		slog.Duration("duration", stats.Duration))

	return stats, nil
}

// crawlSource processes a single feed source. Fetch failures are logged and
// recorded but do not abort the crawl; only storage and timestamp failures
// propagate.
func (s *Service) crawlSource(ctx context.Context, src *entity.Source, stats *CrawlStats) error {
	sourceStart := time.Now()

	feedItems, err := s.FeedFetcher.Fetch(ctx, src.FeedURL)
	if err != nil {
		slog.Warn("failed to fetch feed",
			slog.Int64("source_id", src.ID),
			slog.String("feed_url", src.FeedURL),
			slog.Any("error", err))
		metrics.RecordFeedCrawlError(src.Name, "fetch_failed")
		return nil
	}

	if len(feedItems) == 0 {
		slog.Info("feed is empty",
			slog.Int64("source_id", src.ID),
			slog.String("feed_url", src.FeedURL))
		return nil
	}

	beforeInserted := atomic.LoadInt64(&stats.Inserted)

	if err := s.processFeedItems(ctx, src, feedItems, stats); err != nil {
		metrics.RecordFeedCrawlError(src.Name, "process_items_failed")
		return fmt.Errorf("process feed items: %w", err)
	}

	// Record the crawl even when the surrounding context was canceled after
	// processing finished
	safeCtx := context.WithoutCancel(ctx)
	if err := s.SourceRepo.MarkCrawled(safeCtx, src.ID, time.Now()); err != nil {
		return fmt.Errorf("update source crawled timestamp: %w", err)
	}

	sourceDuration := time.Since(sourceStart)
	inserted := atomic.LoadInt64(&stats.Inserted) - beforeInserted

	metrics.RecordFeedCrawl(src.Name, sourceDuration)
	metrics.RecordArticlesIngested(src.Name, int(inserted))

	slog.Info("source crawl completed",
		slog.Int64("source_id", src.ID),
		slog.String("source_name", src.Name),
		slog.Int("feed_items", len(feedItems)),
		slog.Int64("inserted", inserted),
		slog.Duration("duration", sourceDuration))

	return nil
}

// processFeedItems enriches, summarizes, and stores new feed items in
// parallel. Enrichment runs at configured parallelism (I/O-bound);
// summarization runs at a lower bound since providers are rate-limited.
//
// Context cancellation and database errors abort the source; summarization
// errors are counted and the item is skipped.
func (s *Service) processFeedItems(
	ctx context.Context,
	src *entity.Source,
	feedItems []fetcher.FeedItem,
	stats *CrawlStats,
) error {
	enrichSem := make(chan struct{}, s.config.EnrichParallelism)
	summarySem := make(chan struct{}, summarizerParallelism)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, feedItem := range feedItems {
		item := feedItem

		atomic.AddInt64(&stats.FeedItems, 1)

		exists, err := s.ArticleRepo.ExistsByURL(ctx, item.URL)
		if err != nil {
			slog.Warn("failed to check URL existence",
				slog.Int64("source_id", src.ID),
				slog.String("url", item.URL),
				slog.Any("error", err))
			metrics.RecordFeedCrawlError(src.Name, "exists_check_failed")
			continue
		}
		if exists {
			atomic.AddInt64(&stats.Duplicated, 1)
			continue
		}

		eg.Go(func() error {
			enrichSem <- struct{}{}
			author, location, content := s.enrichItem(egCtx, item)
			<-enrichSem

			summarySem <- struct{}{}
			defer func() { <-summarySem }()

			summary, err := s.Summarizer.Summarize(egCtx, content)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}

				atomic.AddInt64(&stats.SummarizeErrors, 1)
				metrics.RecordBriefGenerated("article", false)
				slog.Warn("summarization failed, skipping article",
					slog.Int64("source_id", src.ID),
					slog.String("url", item.URL),
					slog.String("headline", item.Headline),
					slog.Any("error", err))
				return nil
			}
			metrics.RecordBriefGenerated("article", true)

			art := &entity.NewsArticle{
				SourceID:    src.ID,
				Headline:    item.Headline,
				Author:      author,
				Location:    location,
				Content:     summary,
				URL:         item.URL,
				PublishedAt: item.PublishedAt,
				CreatedAt:   time.Now(),
			}
			if err := s.ArticleRepo.Create(egCtx, art); err != nil {
				return fmt.Errorf("create article in repository: %w", err)
			}
			atomic.AddInt64(&stats.Inserted, 1)

			// NotifyService fans out in its own goroutines; the crawl
			// context must not cancel an already-stored article's alert
			if err := s.NotifyService.NotifyArticle(context.Background(), art); err != nil {
				slog.Warn("failed to dispatch notification",
					slog.Int64("article_id", art.ID),
					slog.String("url", art.URL),
					slog.Any("error", err))
			}

			return nil
		})
	}

	return eg.Wait()
}

// enrichItem fills in author, location, and body text from the article page
// when the feed entry is missing them. It never fails: on any enrichment
// error the feed's own values are used.
func (s *Service) enrichItem(ctx context.Context, item fetcher.FeedItem) (author, location, content string) {
	author = item.Author
	content = item.Content

	needsContent := len(item.Content) < s.config.EnrichThreshold
	needsMetadata := item.Author == ""

	if s.Enricher == nil || (!needsContent && !needsMetadata) {
		return author, location, content
	}

	meta, err := s.Enricher.Enrich(ctx, item.URL)
	if err != nil {
		slog.Warn("page enrichment failed, using feed values",
			slog.String("url", item.URL),
			slog.Any("error", err))
		return author, location, content
	}

	if author == "" {
		author = meta.Author
	}
	location = meta.Location
	if needsContent && len(meta.Content) > len(content) {
		content = meta.Content
	}

	return author, location, content
}
