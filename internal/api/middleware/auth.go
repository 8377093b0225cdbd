package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kerem/fitness-tracker-api/internal/service"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// AuthCookieName is the fallback cookie checked when no Authorization header
// is present.
const AuthCookieName = "authToken"

// Auth verifies the access token from the Authorization header, falling back
// to the auth cookie, and attaches the decoded claims to the request context.
// The client-visible failure message is uniform; the cause is logged.
func Auth(authService *service.AuthService, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				unauthorized(w, "Access token is missing")
				return
			}

			claims, err := authService.ValidateAccessToken(token)
			if err != nil {
				log.Info("token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken prefers a bearer Authorization header and falls back to the
// auth cookie. A blank header is the same as no header.
func extractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := r.Cookie(AuthCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// GetClaims returns the decoded identity stored by Auth.
func GetClaims(ctx context.Context) (*service.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*service.Claims)
	return claims, ok
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
