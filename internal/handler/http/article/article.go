// Package article provides HTTP handlers for article endpoints: listing,
// detail, and the per-article brief.
package article

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"briefing-feed/internal/domain/entity"
	"briefing-feed/internal/handler/http/respond"
	artUC "briefing-feed/internal/usecase/article"
)

const defaultListLimit = 50

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id"`
	SourceID    int64     `json:"source_id"`
	Headline    string    `json:"headline"`
	Location    string    `json:"location,omitempty"`
	Author      string    `json:"author,omitempty"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(a *entity.NewsArticle) DTO {
	return DTO{
		ID:          a.ID,
		SourceID:    a.SourceID,
		Headline:    a.Headline,
		Location:    a.Location,
		Author:      a.Author,
		Content:     a.Content,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

// Register registers the article routes with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("GET /articles", ListHandler{Svc: svc})
	mux.Handle("GET /articles/{id}", GetHandler{Svc: svc})
	mux.Handle("GET /articles/{id}/brief", BriefHandler{Svc: svc})
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, errors.New("invalid article ID")
	}
	return id, nil
}

// statusFor maps article use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, artUC.ErrInvalidArticleID):
		return http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ListHandler serves GET /articles.
type ListHandler struct{ Svc *artUC.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 200 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("limit must be between 1 and 200"))
			return
		}
		limit = parsed
	}

	articles, err := h.Svc.List(r.Context(), limit)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetHandler serves GET /articles/{id}.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}

// BriefHandler serves GET /articles/{id}/brief.
type BriefHandler struct{ Svc *artUC.Service }

func (h BriefHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	brief, err := h.Svc.GetBrief(r.Context(), id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, brief)
}
