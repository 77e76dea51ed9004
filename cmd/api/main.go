package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"briefing-feed/internal/infra/db"
	"briefing-feed/internal/infra/notifier"
	pgRepo "briefing-feed/internal/infra/persistence/postgres"
	"briefing-feed/internal/observability/logging"
	"briefing-feed/pkg/config"

	hhttp "briefing-feed/internal/handler/http"
	artUC "briefing-feed/internal/usecase/article"
	digestUC "briefing-feed/internal/usecase/digest"
	"briefing-feed/internal/usecase/notify"
	"briefing-feed/internal/usecase/timeline"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	validateJWTSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	notifyService := initNotifyService(logger)

	articleRepo := pgRepo.NewArticleRepo(database)
	tweetRepo := pgRepo.NewTweetRepo(database)

	handler := hhttp.NewRouter(hhttp.Deps{
		DB:       database,
		Articles: &artUC.Service{Repo: articleRepo},
		Timeline: &timeline.Service{Repo: tweetRepo, NotifyService: notifyService},
		Digest:   digestUC.NewService(articleRepo, tweetRepo),
		Notify:   notifyService,
		Logger:   logger,
		Version:  getVersion(),
	})

	runServer(logger, handler, notifyService)
}

// validateJWTSecret enforces a minimum strength on JWT_SECRET. Token issuance
// is optional, but when a secret is configured it must not be trivially weak.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Warn("JWT_SECRET not set, token issuance and protected routes disabled")
		return
	}
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// initNotifyService builds the notification service from the configured
// webhook channels. With no channels configured alerts are silently dropped.
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

	maxConcurrent := config.GetEnvInt("NOTIFY_MAX_CONCURRENT", 10)
	logger.Info("notification service initialized",
		slog.Int("channels", len(channels)),
		slog.Int("max_concurrent", maxConcurrent))

	return notify.NewService(channels, maxConcurrent)
}

func getVersion() string {
	return config.GetEnvString("VERSION", "dev")
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down gracefully: the server first, in-flight notifications after.
func runServer(logger *slog.Logger, handler http.Handler, notifyService notify.Service) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := config.GetEnvString("LISTEN_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", getVersion()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := notifyService.Shutdown(shutdownCtx); err != nil {
		logger.Error("notification service shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
