package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avelis/users-api/internal/api"
	apiMiddleware "github.com/avelis/users-api/internal/api/middleware"
)

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(userHandler *api.UserHandler, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", userHandler.Create)
		r.Get("/users", userHandler.List)
		r.Get("/users/{id}", userHandler.Get)
		r.Patch("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
