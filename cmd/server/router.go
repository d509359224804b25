package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bank-api/internal/api"
	apiMiddleware "github.com/phrazzld/bank-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(middleware.Recoverer)

	clientHandler := api.NewClientHandler(app.clientService, app.logger)
	accountHandler := api.NewAccountHandler(app.accountService, app.logger)
	healthHandler := api.NewHealthHandler(app.db, app.logger)

	clientHandler.Routes(r)
	accountHandler.Routes(r)

	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", app.metrics.Handler())

	return r
}
