package middleware

import (
	"net/http"
	"strings"

	"github.com/gatherly/server/internal/config"
	"github.com/rs/zerolog"
)

// CORS handles cross-origin requests from the browser client. Development
// allows any origin; production checks against the configured whitelist and
// logs rejected origins for monitoring.
func CORS(cfg config.CORSConfig, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Same-origin requests carry no Origin header.
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed := ""
			if cfg.AllowAllOrigins {
				allowed = origin
			} else if isOriginAllowed(origin, cfg.AllowedOrigins) {
				allowed = origin
			} else {
				logger.Warn().
					Str("origin", origin).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("rejected cross-origin request")
			}

			if allowed != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowed)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, X-Request-ID")
				w.Header().Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, candidate := range allowedOrigins {
		if strings.EqualFold(origin, candidate) {
			return true
		}
	}
	return false
}
