package notify

import (
	"fmt"

	"briefing-feed/internal/domain/brief"
)

// Breaking formats the alert headline for any item that can summarize itself.
func Breaking(item brief.Summarizer) string {
	return fmt.Sprintf("Breaking news! %s", item.Summarize())
}

// BreakingAll formats alert headlines for a batch of items. The type parameter
// forces all items in one call to share a concrete type.
func BreakingAll[T brief.Summarizer](items ...T) []string {
	headlines := make([]string, 0, len(items))
	for _, item := range items {
		headlines = append(headlines, Breaking(item))
	}
	return headlines
}

// BreakingDetailed formats an alert headline for items that also carry a full
// display form, appending it after the summary.
func BreakingDetailed[T interface {
	brief.Summarizer
	fmt.Stringer
}](item T) string {
	return fmt.Sprintf("Breaking news! %s (%s)", item.Summarize(), item.String())
}

// FreshTweet formats the alert headline for a newly ingested tweet.
func FreshTweet(item brief.Summarizer) string {
	return fmt.Sprintf("1 new tweet: %s", item.Summarize())
}
