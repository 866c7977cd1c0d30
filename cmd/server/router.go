package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/skillpilot-api/internal/api"
	apiMiddleware "github.com/phrazzld/skillpilot-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	authHandler := api.NewAuthHandler(app.credentials, app.session)
	pathwayHandler := api.NewPathwayHandler(app.recommender)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/logout", authHandler.Logout)
		r.Get("/pathways/catalog", pathwayHandler.Catalog)

		// Require the session flag
		r.Group(func(r chi.Router) {
			r.Use(apiMiddleware.RequireLogin(app.session))
			r.Get("/pathways", pathwayHandler.Lookup)
			r.Post("/pathways/generate", pathwayHandler.Generate)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
