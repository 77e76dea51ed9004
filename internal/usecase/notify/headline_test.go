package notify

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"briefing-feed/internal/domain/entity"
)

func TestBreaking_Article(t *testing.T) {
	article := &entity.NewsArticle{
		Headline: "Penguins win the Stanley Cup Championship!",
		Location: "Pittsburgh, PA, USA",
		Author:   "Iceburgh",
	}

	got := Breaking(article)
	assert.Equal(t, "Breaking news! Penguins win the Stanley Cup Championship!, by Iceburgh (Pittsburgh, PA, USA)", got)
}

func TestBreaking_Tweet(t *testing.T) {
	tweet := &entity.Tweet{
		Username: "horse_ebooks",
		Content:  "of course, as you probably already know, people",
	}

	got := Breaking(tweet)
	assert.Equal(t, "Breaking news! horse_ebooks: of course, as you probably already know, people", got)
}

func TestBreakingAll_SharedType(t *testing.T) {
	tweets := []*entity.Tweet{
		{Username: "a", Content: "first"},
		{Username: "b", Content: "second"},
	}

	got := BreakingAll(tweets...)
	assert.Equal(t, []string{
		"Breaking news! a: first",
		"Breaking news! b: second",
	}, got)
}

// displayItem carries both a summary and a full display form.
type displayItem struct {
	summary string
	full    string
}

func (d displayItem) Summarize() string { return d.summary }
func (d displayItem) String() string    { return d.full }

var _ fmt.Stringer = displayItem{}

func TestBreakingDetailed(t *testing.T) {
	item := displayItem{summary: "markets rally", full: "markets rally on rate cut hopes"}

	got := BreakingDetailed(item)
	assert.Equal(t, "Breaking news! markets rally (markets rally on rate cut hopes)", got)
}

func TestFreshTweet(t *testing.T) {
	tweet := &entity.Tweet{Username: "jcabdu", Content: "shipping it"}

	got := FreshTweet(tweet)
	assert.Equal(t, "1 new tweet: jcabdu: shipping it", got)
}
