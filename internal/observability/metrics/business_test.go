package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gather finds a metric family by name in the default registry.
func gather(t *testing.T, name string) *dto.MetricFamily {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

// counterValue returns the value of the counter with the given labels, or 0.
func counterValue(mf *dto.MetricFamily, labels map[string]string) float64 {
	if mf == nil {
		return 0
	}

outer:
	for _, m := range mf.GetMetric() {
		got := map[string]string{}
		for _, lp := range m.GetLabel() {
			got[lp.GetName()] = lp.GetValue()
		}
		for k, v := range labels {
			if got[k] != v {
				continue outer
			}
		}
		return m.GetCounter().GetValue()
	}
	return 0
}

func TestRecordArticlesIngested(t *testing.T) {
	before := counterValue(gather(t, "articles_ingested_total"), map[string]string{"source": "test-source"})

	RecordArticlesIngested("test-source", 3)
	RecordArticlesIngested("test-source", 0)  // no-op
	RecordArticlesIngested("test-source", -1) // no-op

	after := counterValue(gather(t, "articles_ingested_total"), map[string]string{"source": "test-source"})
	assert.Equal(t, 3.0, after-before)
}

func TestRecordBriefGenerated(t *testing.T) {
	labels := map[string]string{"kind": "tweet", "status": "success"}
	before := counterValue(gather(t, "briefs_generated_total"), labels)

	RecordBriefGenerated("tweet", true)
	RecordBriefGenerated("tweet", false)

	after := counterValue(gather(t, "briefs_generated_total"), labels)
	assert.Equal(t, 1.0, after-before)

	failLabels := map[string]string{"kind": "tweet", "status": "failure"}
	assert.GreaterOrEqual(t, counterValue(gather(t, "briefs_generated_total"), failLabels), 1.0)
}

func TestRecordNotificationSent(t *testing.T) {
	labels := map[string]string{"channel": "slack", "status": "success"}
	before := counterValue(gather(t, "notifications_sent_total"), labels)

	RecordNotificationSent("slack", true)

	after := counterValue(gather(t, "notifications_sent_total"), labels)
	assert.Equal(t, 1.0, after-before)
}

func TestDurationRecorders(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordSummarizerDuration("rule", 25*time.Millisecond)
		RecordFeedCrawl("test-source", 150*time.Millisecond)
		RecordFeedCrawlError("test-source", "timeout")
		RecordTweetIngested()
	})
}
