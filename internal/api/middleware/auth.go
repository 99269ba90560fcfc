package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gatherly/server/internal/api/respond"
	"github.com/gatherly/server/internal/auth"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenAuth requires a valid session token in the Authorization header and
// attaches the resolved claims to the request context. The three failure
// modes are reported distinctly: missing token, invalid token, and expired
// token (the last with expired=true in the body).
func TokenAuth(manager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", err)
				return
			}

			claims, err := manager.Validate(token)
			if err != nil {
				if errors.Is(err, auth.ErrExpiredToken) {
					respond.Error(w, r, http.StatusUnauthorized, "Authentication token expired", err, respond.WithExpired())
					return
				}
				respond.Error(w, r, http.StatusUnauthorized, "Invalid authentication token", err)
				return
			}

			ctx := contextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin callers. It must run inside TokenAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := Claims(r)
		if claims == nil {
			respond.Error(w, r, http.StatusUnauthorized, "Authentication token required", auth.ErrMissingToken)
			return
		}
		if !auth.IsAdmin(claims.Role) {
			respond.Error(w, r, http.StatusForbidden, "Admin access required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func contextWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// Claims returns the authenticated caller's claims, or nil outside TokenAuth.
func Claims(r *http.Request) *auth.Claims {
	if r == nil {
		return nil
	}
	if claims, ok := r.Context().Value(claimsKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
