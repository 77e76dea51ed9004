package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/repository"
)

type TweetRepo struct {
	db *sql.DB
}

func NewTweetRepo(db *sql.DB) repository.TweetRepository {
	return &TweetRepo{db: db}
}

func (repo *TweetRepo) List(ctx context.Context, limit int) ([]*entity.Tweet, error) {
	const query = `
SELECT id, username, content, reply, retweet, created_at
FROM tweets
ORDER BY created_at DESC
LIMIT $1`
	rows, err := repo.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tweets := make([]*entity.Tweet, 0, limit)
	for rows.Next() {
		var tweet entity.Tweet
		if err := rows.Scan(&tweet.ID, &tweet.Username, &tweet.Content,
			&tweet.Reply, &tweet.Retweet, &tweet.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		tweets = append(tweets, &tweet)
	}
	return tweets, rows.Err()
}

func (repo *TweetRepo) Get(ctx context.Context, id int64) (*entity.Tweet, error) {
	const query = `
SELECT id, username, content, reply, retweet, created_at
FROM tweets
WHERE id = $1`
	var tweet entity.Tweet
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&tweet.ID, &tweet.Username, &tweet.Content,
		&tweet.Reply, &tweet.Retweet, &tweet.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &tweet, nil
}

func (repo *TweetRepo) Latest(ctx context.Context) (*entity.Tweet, error) {
	const query = `
SELECT id, username, content, reply, retweet, created_at
FROM tweets
ORDER BY created_at DESC
LIMIT 1`
	var tweet entity.Tweet
	err := repo.db.QueryRowContext(ctx, query).Scan(
		&tweet.ID, &tweet.Username, &tweet.Content,
		&tweet.Reply, &tweet.Retweet, &tweet.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Latest: %w", err)
	}
	return &tweet, nil
}

func (repo *TweetRepo) Create(ctx context.Context, tweet *entity.Tweet) error {
	const query = `
INSERT INTO tweets (username, content, reply, retweet)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		tweet.Username, tweet.Content, tweet.Reply, tweet.Retweet,
	).Scan(&tweet.ID, &tweet.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
