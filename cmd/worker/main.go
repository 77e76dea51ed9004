package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"briefing-feed/internal/config"
	"briefing-feed/internal/handler/http/respond"
	"briefing-feed/internal/infra/db"
	"briefing-feed/internal/infra/fetcher"
	"briefing-feed/internal/infra/notifier"
	pgRepo "briefing-feed/internal/infra/persistence/postgres"
	"briefing-feed/internal/infra/summarizer"
	"briefing-feed/internal/observability/logging"
	"briefing-feed/internal/repository"
	"briefing-feed/internal/usecase/ingest"
	"briefing-feed/internal/usecase/notify"
	pkgconfig "briefing-feed/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sourceRepo := pgRepo.NewSourceRepo(database)
	bootstrapSources(ctx, logger, sourceRepo)

	notifyService := initNotifyService(logger)
	startMetricsServer(ctx, logger, notifyService)

	svc := setupIngestService(logger, database, sourceRepo, notifyService)

	runCronWorker(ctx, logger, svc, notifyService)
}

// initDatabase opens the database connection and waits for the API's
// migrations to land. The worker never migrates itself.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	waitForMigrations(logger, database)
	return database
}

func waitForMigrations(logger *slog.Logger, database *sql.DB) {
	const probe = "SELECT 1 FROM sources LIMIT 1"
	for i := 0; i < 10; i++ {
		if _, err := database.Exec(probe); err == nil {
			return
		}
		logger.Info("waiting for migrations, retrying in 3s", slog.Int("attempt", i+1))
		time.Sleep(3 * time.Second)
	}
	logger.Error("migrations did not complete in time")
	os.Exit(1)
}

// bootstrapSources seeds the source store from the YAML sources file. A
// missing or invalid file is not fatal; the crawler runs with whatever the
// store already holds.
func bootstrapSources(ctx context.Context, logger *slog.Logger, repo repository.SourceRepository) {
	path := config.SourcesPathFromEnv()
	sources, err := config.LoadSources(path)
	if err != nil {
		logger.Warn("skipping source bootstrap",
			slog.String("path", path),
			slog.Any("error", err))
		return
	}
	if err := config.BootstrapSources(ctx, repo, sources); err != nil {
		logger.Error("failed to bootstrap sources", slog.Any("error", err))
		os.Exit(1)
	}
}

// initNotifyService builds the notification service from the configured
// webhook channels.
func initNotifyService(logger *slog.Logger) notify.Service {
	var channels []notify.Channel

	if slackCfg := notifier.LoadSlackConfigFromEnv(); slackCfg.Enabled {
		channels = append(channels, notify.NewSlackChannel(slackCfg))
		logger.Info("Slack channel initialized")
	}
	if discordCfg := notifier.LoadDiscordConfigFromEnv(); discordCfg.Enabled {
		channels = append(channels, notify.NewDiscordChannel(discordCfg))
		logger.Info("Discord channel initialized")
	}

	maxConcurrent := pkgconfig.GetEnvInt("NOTIFY_MAX_CONCURRENT", 10)
	logger.Info("notification service initialized",
		slog.Int("channels", len(channels)),
		slog.Int("max_concurrent", maxConcurrent))

	return notify.NewService(channels, maxConcurrent)
}

// setupIngestService wires the crawl pipeline: RSS fetcher, optional page
// enricher, summarizer, repositories and notifications.
func setupIngestService(logger *slog.Logger, database *sql.DB, sourceRepo repository.SourceRepository, notifyService notify.Service) *ingest.Service {
	fetchCfg := fetcher.LoadConfigFromEnv()
	feedFetcher := fetcher.NewRSSFetcher(fetchCfg)

	var enricher ingest.Enricher
	if pkgconfig.GetEnvBool("ENRICH_ENABLED", true) {
		enricher = fetcher.NewPageEnricher(fetchCfg)
		logger.Info("page enrichment enabled")
	} else {
		logger.Info("page enrichment disabled")
	}

	sum, err := summarizer.NewFromEnv()
	if err != nil {
		logger.Error("failed to create summarizer", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("summarizer initialized", slog.String("provider", sum.Name()))

	return ingest.NewService(
		sourceRepo,
		pgRepo.NewArticleRepo(database),
		feedFetcher,
		enricher,
		sum,
		notifyService,
		ingest.Config{
			EnrichParallelism: pkgconfig.GetEnvInt("ENRICH_PARALLELISM", 4),
			EnrichThreshold:   pkgconfig.GetEnvInt("ENRICH_THRESHOLD", 500),
		},
	)
}

// runCronWorker schedules periodic crawls and blocks until SIGINT/SIGTERM.
func runCronWorker(ctx context.Context, logger *slog.Logger, svc *ingest.Service, notifyService notify.Service) {
	schedule := pkgconfig.GetEnvString("CRON_SCHEDULE", "@every 30m")
	timezone := pkgconfig.GetEnvString("CRON_TIMEZONE", "UTC")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC",
			slog.String("timezone", timezone),
			slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(schedule, func() {
		runCrawlJob(ctx, logger, svc)
	}); err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()
	logger.Info("worker started",
		slog.String("schedule", schedule),
		slog.String("timezone", timezone))

	if pkgconfig.GetEnvBool("CRAWL_ON_START", true) {
		go runCrawlJob(ctx, logger, svc)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down worker...")

	cronCtx := c.Stop()
	<-cronCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Error("notification service shutdown failed", slog.Any("error", err))
	}
	logger.Info("worker stopped")
}

// runCrawlJob executes a single crawl with a timeout.
func runCrawlJob(ctx context.Context, logger *slog.Logger, svc *ingest.Service) {
	timeout := pkgconfig.GetEnvDuration("CRAWL_TIMEOUT", 10*time.Minute)
	crawlCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.Info("crawl started")
	stats, err := svc.CrawlAllSources(crawlCtx)
	if err != nil {
		logger.Error("crawl failed", slog.Any("error", respond.SanitizeError(err)))
		return
	}

	logger.Info("crawl completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("feed_items", stats.FeedItems),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("duplicated", stats.Duplicated),
		slog.Int64("summarize_errors", stats.SummarizeErrors),
		slog.Duration("duration", stats.Duration),
	)
}
