package http

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	articleHandler "briefing-feed/internal/handler/http/article"
	"briefing-feed/internal/handler/http/auth"
	"briefing-feed/internal/handler/http/requestid"
	tweetHandler "briefing-feed/internal/handler/http/tweet"
	"briefing-feed/internal/observability/tracing"
	artUC "briefing-feed/internal/usecase/article"
	digestUC "briefing-feed/internal/usecase/digest"
	"briefing-feed/internal/usecase/notify"
	"briefing-feed/internal/usecase/timeline"
)

// maxRequestBody caps incoming request bodies. Tweets are tiny; 64 KiB
// leaves generous headroom.
const maxRequestBody = 64 << 10

// Deps carries everything the router needs.
type Deps struct {
	DB       *sql.DB
	Articles *artUC.Service
	Timeline *timeline.Service
	Digest   *digestUC.Service
	Notify   notify.Service
	Logger   *slog.Logger
	Version  string
}

// NewRouter builds the API handler: all routes registered on a ServeMux,
// wrapped in the middleware chain (request ID, tracing, logging, metrics,
// panic recovery, body limit).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	articleHandler.Register(mux, deps.Articles)
	tweetHandler.Register(mux, deps.Timeline)
	mux.Handle("GET /digest", DigestHandler{Svc: deps.Digest})
	mux.Handle("POST /auth/token", auth.TokenHandler())
	mux.Handle("GET /healthz", &HealthHandler{DB: deps.DB, Notify: deps.Notify, Version: deps.Version})
	mux.Handle("GET /metrics", promhttp.Handler())

	return Chain(mux,
		requestid.Middleware,
		tracing.Middleware,
		Logging(deps.Logger),
		Metrics(mux),
		Recover(deps.Logger),
		LimitRequestBody(maxRequestBody),
	)
}
