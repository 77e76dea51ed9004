// Package digest builds the two-item briefing: the latest article and the
// latest tweet, ranked by engagement score. The items themselves have no
// ordering; their scores do, which is what makes the pairwise comparison
// applicable here.
package digest

import (
	"context"
	"fmt"
	"time"

	"briefing-feed/internal/domain/brief"
	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/repository"
	"briefing-feed/pkg/pair"
)

// Item is one entry of the digest.
type Item struct {
	Kind    string  `json:"kind"` // "article" or "tweet"
	Summary string  `json:"summary"`
	Teaser  string  `json:"teaser"`
	Score   float64 `json:"score"`
}

// Digest is a two-item briefing with the higher-scoring item leading.
type Digest struct {
	Lead   Item   `json:"lead"`
	Runner *Item  `json:"runner,omitempty"`
	Note   string `json:"note"`
}

// Service assembles digests from the latest stored article and tweet.
type Service struct {
	Articles repository.ArticleRepository
	Tweets   repository.TweetRepository

	now func() time.Time // test seam
}

// NewService creates a new digest Service.
func NewService(articles repository.ArticleRepository, tweets repository.TweetRepository) *Service {
	return &Service{
		Articles: articles,
		Tweets:   tweets,
		now:      time.Now,
	}
}

// Build assembles the digest. The article score and tweet score form a pair;
// the larger member decides which item leads, with the article winning ties.
// When only one item exists it leads alone. Returns ErrNothingToDigest when
// the stores are empty.
func (s *Service) Build(ctx context.Context) (*Digest, error) {
	latestArticle, err := s.Articles.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest article: %w", err)
	}
	latestTweet, err := s.Tweets.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest tweet: %w", err)
	}

	switch {
	case latestArticle == nil && latestTweet == nil:
		return nil, ErrNothingToDigest
	case latestTweet == nil:
		item := s.articleItem(latestArticle)
		return &Digest{Lead: item, Note: singleNote(item)}, nil
	case latestArticle == nil:
		item := s.tweetItem(latestTweet)
		return &Digest{Lead: item, Note: singleNote(item)}, nil
	}

	articleItem := s.articleItem(latestArticle)
	tweetItem := s.tweetItem(latestTweet)

	scores := pair.New(articleItem.Score, tweetItem.Score)
	note := pair.CompareDisplay(scores)

	if pair.LargestLabel(scores) == "x" {
		return &Digest{Lead: articleItem, Runner: &tweetItem, Note: note}, nil
	}
	return &Digest{Lead: tweetItem, Runner: &articleItem, Note: note}, nil
}

func (s *Service) articleItem(a *entity.NewsArticle) Item {
	return Item{
		Kind:    "article",
		Summary: a.Summarize(),
		Teaser:  brief.Teaser(a),
		Score:   s.articleScore(a),
	}
}

func (s *Service) tweetItem(t *entity.Tweet) Item {
	return Item{
		Kind:    "tweet",
		Summary: t.Summarize(),
		Teaser:  brief.AuthorTeaser(t),
		Score:   tweetScore(t),
	}
}

// articleScore rates an article on body length and freshness. Articles start
// ahead of tweets so ties in a thin news cycle favor editorial content.
func (s *Service) articleScore(a *entity.NewsArticle) float64 {
	score := 50.0

	contentLen := len(a.Content)
	if contentLen > 2000 {
		contentLen = 2000
	}
	score += float64(contentLen) / 40

	if s.now().Sub(a.PublishedAt) < 24*time.Hour {
		score += 25
	}

	return score
}

// tweetScore rates a tweet on length, with boosts for amplification signals.
func tweetScore(t *entity.Tweet) float64 {
	score := 10.0

	contentLen := len(t.Content)
	if contentLen > 280 {
		contentLen = 280
	}
	score += float64(contentLen) / 4

	if t.Retweet {
		score += 15
	}
	if t.Reply {
		score += 5
	}

	return score
}

func singleNote(item Item) string {
	return fmt.Sprintf("Only one item available: %s", item.Summary)
}
