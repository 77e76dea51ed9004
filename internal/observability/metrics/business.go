package metrics

import "time"

// RecordArticlesIngested records the number of articles ingested from a source.
func RecordArticlesIngested(sourceName string, count int) {
	if count <= 0 {
		return
	}
	ArticlesIngestedTotal.WithLabelValues(sourceName).Add(float64(count))
}

// RecordTweetIngested records a single tweet accepted into the timeline.
func RecordTweetIngested() {
	TweetsIngestedTotal.Inc()
}

// RecordBriefGenerated records the result of a brief generation.
// Kind should be "article" or "tweet".
func RecordBriefGenerated(kind string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	BriefsGeneratedTotal.WithLabelValues(kind, status).Inc()
}

// RecordSummarizerDuration records the time taken by a summarizer call.
func RecordSummarizerDuration(provider string, duration time.Duration) {
	SummarizerDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordNotificationSent records a dispatched notification.
func RecordNotificationSent(channel string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	NotificationsSentTotal.WithLabelValues(channel, status).Inc()
}

// RecordNotificationDropped records a notification dropped before dispatch.
// Reason should be "pool_full" or "circuit_open".
func RecordNotificationDropped(channel, reason string) {
	NotificationsDroppedTotal.WithLabelValues(channel, reason).Inc()
}

// RecordFeedCrawl records the duration of a feed crawl for a source.
func RecordFeedCrawl(sourceName string, duration time.Duration) {
	FeedCrawlDuration.WithLabelValues(sourceName).Observe(duration.Seconds())
}

// RecordFeedCrawlError records an error during feed crawling.
func RecordFeedCrawlError(sourceName, errorType string) {
	FeedCrawlErrors.WithLabelValues(sourceName, errorType).Inc()
}
