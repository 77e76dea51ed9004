package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"briefing-feed/internal/handler/http/respond"
	"briefing-feed/internal/usecase/notify"
)

// HealthResponse represents the JSON response for the health check endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthHandler performs database and notification channel checks and
// returns detailed health status. Returns 200 when healthy, 503 when the
// database is unreachable. Open notification circuit breakers are reported
// but do not fail the check since the API itself still works.
type HealthHandler struct {
	DB      *sql.DB
	Notify  notify.Service
	Version string
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.DB != nil {
		dbCheck := h.checkDatabase(ctx)
		checks["database"] = dbCheck
		if dbCheck.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	if h.Notify != nil {
		checks["notifications"] = h.checkNotifications()
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: "ping failed"}
	}

	stats := h.DB.Stats()
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
		},
	}
}

func (h *HealthHandler) checkNotifications() CheckStatus {
	statuses := h.Notify.GetChannelHealth()

	channels := make(map[string]any, len(statuses))
	degraded := false
	for _, st := range statuses {
		state := "ok"
		switch {
		case !st.Enabled:
			state = "disabled"
		case st.CircuitBreakerOpen:
			state = "circuit_open"
			degraded = true
		}
		channels[st.Name] = state
	}

	status := "healthy"
	message := ""
	if degraded {
		status = "degraded"
		message = "one or more channels have an open circuit breaker"
	}

	return CheckStatus{Status: status, Message: message, Details: channels}
}
