package http

import (
	"errors"
	"net/http"

	"briefing-feed/internal/handler/http/respond"
	digestUC "briefing-feed/internal/usecase/digest"
)

// DigestHandler serves GET /digest: the two-item briefing built from the
// latest article and tweet.
type DigestHandler struct {
	Svc *digestUC.Service
}

func (h DigestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d, err := h.Svc.Build(r.Context())
	if err != nil {
		if errors.Is(err, digestUC.ErrNothingToDigest) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, d)
}
