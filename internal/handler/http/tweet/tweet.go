// Package tweet provides HTTP handlers for the tweet timeline: posting
// tweets and listing recent ones.
package tweet

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/handler/http/auth"
	"briefing-feed/internal/handler/http/respond"
	"briefing-feed/internal/usecase/timeline"
)

const defaultListLimit = 50

// DTO represents the JSON structure for tweet data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Reply     bool      `json:"reply"`
	Retweet   bool      `json:"retweet"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(t *entity.Tweet) DTO {
	return DTO{
		ID:        t.ID,
		Username:  t.Username,
		Content:   t.Content,
		Reply:     t.Reply,
		Retweet:   t.Retweet,
		CreatedAt: t.CreatedAt,
	}
}

// Register registers the tweet routes with the given mux. Posting requires
// authentication; reads are public.
func Register(mux *http.ServeMux, svc *timeline.Service) {
	mux.Handle("POST /tweets", auth.Require(CreateHandler{Svc: svc}))
	mux.Handle("GET /tweets", ListHandler{Svc: svc})
	mux.Handle("GET /tweets/latest", LatestHandler{Svc: svc})
}

type createRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
	Reply    bool   `json:"reply"`
	Retweet  bool   `json:"retweet"`
}

// CreateHandler serves POST /tweets.
type CreateHandler struct{ Svc *timeline.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	tweet, err := h.Svc.Post(r.Context(), timeline.PostInput{
		Username: req.Username,
		Content:  req.Content,
		Reply:    req.Reply,
		Retweet:  req.Retweet,
	})
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, timeline.ErrInvalidTweet) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(tweet))
}

// LatestHandler serves GET /tweets/latest: a brief of the newest timeline
// item. Only the summary surface is exposed, not the tweet itself.
type LatestHandler struct{ Svc *timeline.Service }

func (h LatestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	item, err := h.Svc.Latest(r.Context())
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, timeline.ErrEmptyTimeline) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"summary": item.Summarize()})
}

// ListHandler serves GET /tweets.
type ListHandler struct{ Svc *timeline.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tweets, err := h.Svc.List(r.Context(), defaultListLimit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, toDTO(t))
	}
	respond.JSON(w, http.StatusOK, out)
}
