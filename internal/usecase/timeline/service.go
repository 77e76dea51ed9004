// Package timeline provides use cases for the tweet timeline: accepting new
// tweets, listing recent ones, and surfacing the latest item for briefing.
package timeline

import (
	"context"
	"fmt"
	"time"

	"briefing-feed/internal/domain/brief"
	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/observability/metrics"
	"briefing-feed/internal/repository"
	"briefing-feed/internal/usecase/notify"
)

// PostInput represents the input parameters for posting a new tweet.
type PostInput struct {
	Username string
	Content  string
	Reply    bool
	Retweet  bool
}

// Service provides tweet timeline use cases. It validates and stores tweets
// and delegates alerting to the notification service.
type Service struct {
	Repo          repository.TweetRepository
	NotifyService notify.Service
}

// Post validates and stores a new tweet, then dispatches a new-tweet alert.
// Returns ErrInvalidTweet wrapping the validation detail when input is bad.
func (s *Service) Post(ctx context.Context, input PostInput) (*entity.Tweet, error) {
	tweet := &entity.Tweet{
		Username:  input.Username,
		Content:   input.Content,
		Reply:     input.Reply,
		Retweet:   input.Retweet,
		CreatedAt: time.Now(),
	}

	if err := tweet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTweet, err)
	}

	if err := s.Repo.Create(ctx, tweet); err != nil {
		return nil, fmt.Errorf("create tweet: %w", err)
	}
	metrics.RecordTweetIngested()

	if s.NotifyService != nil {
		if err := s.NotifyService.NotifyTweet(context.WithoutCancel(ctx), tweet); err != nil {
			// Fire-and-forget contract; keep the error check in case it changes
			return tweet, nil
		}
	}

	return tweet, nil
}

// List retrieves recent tweets, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]*entity.Tweet, error) {
	tweets, err := s.Repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list tweets: %w", err)
	}
	return tweets, nil
}

// Get retrieves a single tweet by its ID.
// Returns ErrInvalidTweetID if the ID is not positive and ErrTweetNotFound
// if the tweet does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Tweet, error) {
	if id <= 0 {
		return nil, ErrInvalidTweetID
	}

	tweet, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tweet: %w", err)
	}
	if tweet == nil {
		return nil, ErrTweetNotFound
	}
	return tweet, nil
}

// Latest returns the most recent timeline item as something that can brief
// itself. Callers only need the summary surface, not the tweet fields.
// Returns ErrEmptyTimeline when no tweets exist.
func (s *Service) Latest(ctx context.Context) (brief.Summarizer, error) {
	tweet, err := s.Repo.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("latest tweet: %w", err)
	}
	if tweet == nil {
		return nil, ErrEmptyTimeline
	}
	return tweet, nil
}
