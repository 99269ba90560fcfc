package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gatherly/server/internal/api/handlers"
	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/audit"
	"github.com/gatherly/server/internal/auth"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/users"
	"github.com/gatherly/server/internal/metrics"
	"github.com/rs/zerolog"
)

// NewRouter wires handlers, authorization, and the middleware chain. The
// services are injected so the startup bootstrap and the tests share the
// same stores the router serves from.
func NewRouter(cfg config.Config, logger zerolog.Logger, usersService *users.Service, eventsService *events.Service) http.Handler {
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.Issuer)

	authHandler := handlers.NewAuthHandler(usersService, jwtManager, audit.NewLogger(logger))
	usersHandler := handlers.NewUsersHandler(usersService)
	eventsHandler := handlers.NewEventsHandler(eventsService)

	authRequired := middleware.TokenAuth(jwtManager)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz())
	mux.Handle("/metrics", metrics.Handler())

	mux.Handle("/register", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Register),
	}))
	mux.Handle("/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))

	mux.Handle("/user", methodMux(map[string]http.Handler{
		http.MethodGet: authRequired(http.HandlerFunc(usersHandler.Me)),
	}))

	mux.Handle("/events", methodMux(map[string]http.Handler{
		http.MethodGet:  authRequired(http.HandlerFunc(eventsHandler.List)),
		http.MethodPost: authRequired(http.HandlerFunc(eventsHandler.Create)),
	}))
	mux.Handle("/events/user/me", methodMux(map[string]http.Handler{
		http.MethodGet: authRequired(http.HandlerFunc(eventsHandler.ListMine)),
	}))
	mux.Handle("/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    authRequired(http.HandlerFunc(eventsHandler.Get)),
		http.MethodPut:    authRequired(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: authRequired(http.HandlerFunc(eventsHandler.Delete)),
	}))

	mux.Handle("/admin/users", methodMux(map[string]http.Handler{
		http.MethodGet: authRequired(middleware.RequireAdmin(http.HandlerFunc(usersHandler.List))),
	}))

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
