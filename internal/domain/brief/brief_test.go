package brief_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"briefing-feed/internal/domain/brief"
	"briefing-feed/internal/domain/entity"
)

// plainItem implements only Summarizer: it must observe the default teaser.
type plainItem struct{}

func (plainItem) Summarize() string { return "plain" }

// customItem overrides the teaser: its text must be observed exclusively.
type customItem struct{}

func (customItem) Summarize() string { return "custom" }
func (customItem) Teaser() string    { return "(Custom teaser)" }

func TestSummarize_NewsArticle(t *testing.T) {
	article := &entity.NewsArticle{
		Headline: "Red Coalition Wins Danish General Elections",
		Location: "Copenhagen, Denmark",
		Author:   "Julio Cabdu",
		Content:  "Social Democrats back in government, ...",
	}

	var s brief.Summarizer = article
	assert.Equal(t, "Red Coalition Wins Danish General Elections, by Julio Cabdu (Copenhagen, Denmark)", s.Summarize())
}

func TestSummarize_Tweet(t *testing.T) {
	tweet := &entity.Tweet{
		Username: "jcabdu",
		Content:  "Traits in Rust are fun!",
	}

	var s brief.Summarizer = tweet
	assert.Equal(t, "jcabdu: Traits in Rust are fun!", s.Summarize())
}

func TestTeaser_DefaultAndOverride(t *testing.T) {
	// A type without an override observes the literal default.
	assert.Equal(t, "(Read more...)", brief.Teaser(plainItem{}))
	assert.Equal(t, "(Read more...)", brief.Teaser(&entity.NewsArticle{Headline: "h"}))

	// An override is observed exclusively.
	assert.Equal(t, "(Custom teaser)", brief.Teaser(customItem{}))
}

func TestAuthorTeaser(t *testing.T) {
	tweet := &entity.Tweet{
		Username: "jcabdu",
		Content:  "Implementing the author teaser gives the derived line for free",
	}

	assert.Equal(t, "(Read more from @jcabdu...)", brief.AuthorTeaser(tweet))
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "summarizer renders its own brief", value: plainItem{}, expected: "plain"},
		{name: "tweet renders through Summarize", value: &entity.Tweet{Username: "u", Content: "c"}, expected: "u: c"},
		{name: "non-summarizer falls back to teaser", value: struct{}{}, expected: brief.DefaultTeaser},
		{name: "nil falls back to teaser", value: nil, expected: brief.DefaultTeaser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, brief.Render(tt.value))
		})
	}
}
