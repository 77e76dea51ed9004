package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"briefing-feed/internal/domain/brief"
	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/infra/notifier"
	"briefing-feed/internal/observability/metrics"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// Circuit breaker and dispatch constants
const (
	circuitBreakerThreshold = 5                // Consecutive failures before opening
	circuitBreakerTimeout   = 5 * time.Minute  // Duration to keep circuit breaker open
	workerPoolTimeout       = 5 * time.Second  // Timeout for acquiring worker slot
	notificationTimeout     = 30 * time.Second // Timeout for individual notification
)

// Service dispatches briefing notifications to multiple channels.
// Dispatch is non-blocking: notifications are sent in background goroutines
// and failures are logged but do not propagate to the caller.
type Service interface {
	// NotifyArticle dispatches a breaking-news alert for a newly ingested
	// article to all enabled channels. Always returns nil; errors are
	// handled internally.
	NotifyArticle(ctx context.Context, article *entity.NewsArticle) error

	// NotifyTweet dispatches a new-tweet alert to all enabled channels.
	NotifyTweet(ctx context.Context, tweet *entity.Tweet) error

	// GetChannelHealth returns the circuit breaker state of every channel,
	// for monitoring and health check endpoints.
	GetChannelHealth() []ChannelHealthStatus

	// Shutdown gracefully stops the service, waiting for in-flight
	// notifications to complete or the context to expire.
	Shutdown(ctx context.Context) error
}

// ChannelHealthStatus represents the health of a notification channel.
type ChannelHealthStatus struct {
	Name               string     // Channel name (e.g., "slack", "discord")
	Enabled            bool       // Whether the channel is enabled
	CircuitBreakerOpen bool       // Whether the circuit breaker is currently open
	DisabledUntil      *time.Time // When the circuit breaker closes again (nil if closed)
}

type service struct {
	channels       []Channel
	workerPool     chan struct{}             // Semaphore bounding concurrent sends
	channelHealth  map[string]*channelHealth // Circuit breaker state per channel
	healthMu       sync.RWMutex
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// channelHealth tracks circuit breaker state for one channel.
type channelHealth struct {
	consecutiveFailures int
	disabledUntil       time.Time
	mu                  sync.Mutex
}

// NewService creates a notification service over the given channels with at
// most maxConcurrent in-flight sends.
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	svc := &service{
		channels:       channels,
		workerPool:     make(chan struct{}, maxConcurrent),
		channelHealth:  make(map[string]*channelHealth),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}

	for _, ch := range channels {
		svc.channelHealth[ch.Name()] = &channelHealth{}
	}

	return svc
}

// NotifyArticle implements Service.NotifyArticle.
func (s *service) NotifyArticle(ctx context.Context, article *entity.NewsArticle) error {
	if article == nil || article.Headline == "" {
		slog.Warn("invalid article notification input",
			slog.Bool("nil_article", article == nil))
		return nil
	}

	msg := notifier.Message{
		Headline:  Breaking(article),
		Detail:    brief.Teaser(article),
		Link:      article.URL,
		Timestamp: article.PublishedAt,
	}
	s.dispatch(ctx, msg)
	return nil
}

// NotifyTweet implements Service.NotifyTweet.
func (s *service) NotifyTweet(ctx context.Context, tweet *entity.Tweet) error {
	if tweet == nil || tweet.Username == "" {
		slog.Warn("invalid tweet notification input",
			slog.Bool("nil_tweet", tweet == nil))
		return nil
	}

	msg := notifier.Message{
		Headline:  FreshTweet(tweet),
		Detail:    brief.AuthorTeaser(tweet),
		Timestamp: tweet.CreatedAt,
	}
	s.dispatch(ctx, msg)
	return nil
}

// dispatch fans the message out to every enabled channel in background
// goroutines.
func (s *service) dispatch(ctx context.Context, msg notifier.Message) {
	// Inherit request ID from the caller when one exists
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		requestID = uuid.New().String()
	}

	enabledCount := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		slog.Debug("no notification channels enabled",
			slog.String("request_id", requestID),
			slog.String("headline", msg.Headline))
		return
	}

	slog.Info("dispatching notification",
		slog.String("request_id", requestID),
		slog.String("headline", msg.Headline),
		slog.Int("enabled_channels", enabledCount))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			channel := ch
			s.wg.Add(1)
			go s.notifyChannel(requestID, channel, msg)
		}
	}
}

// notifyChannel sends one message to one channel in a goroutine.
func (s *service) notifyChannel(requestID string, channel Channel, msg notifier.Message) {
	defer s.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in notification channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	// Acquire worker slot, with timeout to avoid piling up goroutines
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		metrics.RecordNotificationDropped(channel.Name(), "pool_full")
		return
	}

	health := s.getChannelHealth(channel.Name())
	health.mu.Lock()
	if time.Now().Before(health.disabledUntil) {
		slog.Warn("channel temporarily disabled by circuit breaker",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.Time("disabled_until", health.disabledUntil))
		health.mu.Unlock()
		metrics.RecordNotificationDropped(channel.Name(), "circuit_open")
		return
	}
	health.mu.Unlock()

	// Derive from the shutdown context so Shutdown cancels in-flight sends
	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	startTime := time.Now()
	err := channel.Send(ctx, msg)
	duration := time.Since(startTime)

	health.mu.Lock()
	if err != nil {
		health.consecutiveFailures++
		if health.consecutiveFailures >= circuitBreakerThreshold {
			health.disabledUntil = time.Now().Add(circuitBreakerTimeout)
			slog.Error("circuit breaker opened for channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Int("consecutive_failures", health.consecutiveFailures))
		}
	} else {
		health.consecutiveFailures = 0
	}
	health.mu.Unlock()

	metrics.RecordNotificationSent(channel.Name(), err == nil)
	if err != nil {
		slog.Warn("channel notification failed",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.String("headline", msg.Headline),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
	} else {
		slog.Info("channel notification sent",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.String("headline", msg.Headline),
			slog.Duration("send_duration", duration))
	}
}

func (s *service) getChannelHealth(channelName string) *channelHealth {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()
	return s.channelHealth[channelName]
}

// GetChannelHealth implements Service.GetChannelHealth.
func (s *service) GetChannelHealth() []ChannelHealthStatus {
	s.healthMu.RLock()
	defer s.healthMu.RUnlock()

	statuses := make([]ChannelHealthStatus, 0, len(s.channels))
	for _, ch := range s.channels {
		health := s.channelHealth[ch.Name()]

		health.mu.Lock()
		var disabledUntil *time.Time
		circuitBreakerOpen := false
		if time.Now().Before(health.disabledUntil) {
			circuitBreakerOpen = true
			until := health.disabledUntil
			disabledUntil = &until
		}
		health.mu.Unlock()

		statuses = append(statuses, ChannelHealthStatus{
			Name:               ch.Name(),
			Enabled:            ch.IsEnabled(),
			CircuitBreakerOpen: circuitBreakerOpen,
			DisabledUntil:      disabledUntil,
		})
	}

	return statuses
}

// Shutdown implements Service.Shutdown.
func (s *service) Shutdown(ctx context.Context) error {
	slog.Info("shutting down notification service")

	s.shutdownCancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("notification service shutdown complete")
		return nil
	case <-ctx.Done():
		slog.Warn("notification service shutdown timeout")
		return ctx.Err()
	}
}
