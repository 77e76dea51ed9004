// Package auth provides JWT authentication for the briefing API: a token
// issuance endpoint backed by env-configured credentials and middleware that
// protects mutating routes.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"briefing-feed/internal/handler/http/requestid"
	"briefing-feed/internal/handler/http/respond"
)

type ctxKey string

// ctxUser carries the authenticated subject through the request context.
const ctxUser ctxKey = "user"

// tokenTTL is how long issued tokens stay valid.
const tokenTTL = 1 * time.Hour

// UserFromContext returns the authenticated subject, or "" when the request
// was not authenticated.
func UserFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(ctxUser).(string); ok {
		return user
	}
	return ""
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// TokenHandler authenticates against AUTH_USERNAME / AUTH_PASSWORD and issues
// an HS256 JWT signed with JWT_SECRET.
func TokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.FromContext(r.Context())
		logger := slog.With(slog.String("request_id", requestID))

		if !issuanceConfigured() {
			logger.Warn("authentication failed", slog.String("reason", "not_configured"))
			respond.SafeError(w, http.StatusServiceUnavailable, errors.New("authentication is not configured"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("authentication failed", slog.String("reason", "invalid_request"))
			respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
			return
		}

		if !credentialsValid(req.Username, req.Password) {
			logger.Warn("authentication failed", slog.String("reason", "invalid_credentials"))
			respond.SafeError(w, http.StatusUnauthorized, errors.New("invalid credentials"))
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": req.Username,
			"exp": time.Now().Add(tokenTTL).Unix(),
		})
		signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			logger.Error("token generation failed", slog.Any("error", err))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		logger.Info("authentication successful", slog.String("user", req.Username))
		respond.JSON(w, http.StatusOK, tokenResponse{Token: signed})
	}
}

// issuanceConfigured reports whether token issuance is possible: credentials
// and a signing secret must all be set. Anything less returns 503 rather than
// pretending credentials were wrong.
func issuanceConfigured() bool {
	return os.Getenv("AUTH_USERNAME") != "" &&
		os.Getenv("AUTH_PASSWORD") != "" &&
		os.Getenv("JWT_SECRET") != ""
}

// credentialsValid compares the submitted credentials against the configured
// pair in constant time.
func credentialsValid(username, password string) bool {
	wantUser := os.Getenv("AUTH_USERNAME")
	wantPass := os.Getenv("AUTH_PASSWORD")

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOK && passOK
}

// Require wraps a handler and rejects requests without a valid bearer token.
// The authenticated subject is added to the request context.
//
// With no signing secret configured every request is rejected: verifying
// against an empty key would accept tokens anyone can forge.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := []byte(os.Getenv("JWT_SECRET"))
		if len(secret) == 0 {
			respond.SafeError(w, http.StatusServiceUnavailable, errors.New("authentication is not configured"))
			return
		}

		user, err := validateJWT(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}

		ctx := context.WithValue(r.Context(), ctxUser, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validateJWT checks the Authorization header and returns the token subject.
// Only HS256 is accepted; expiry is enforced by the parser.
func validateJWT(authz string, secret []byte) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return "", errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)

	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("invalid sub claim")
	}

	return sub, nil
}
