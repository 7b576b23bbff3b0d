// Copyright (c) 2026 Maqala. All rights reserved.

/*
Package api assembles the chi router, the middleware chain, and every
domain handler into a runnable [http.Server].

Architecture:

  - This is the outermost Presentation layer boundary of the service.
  - It is the single composition point for the HTTP transport (chi router).
  - Only this package and cmd/api may touch net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/maqalahq/maqala/internal/article"
	"github.com/maqalahq/maqala/internal/platform/config"
	"github.com/maqalahq/maqala/internal/platform/constants"
	"github.com/maqalahq/maqala/internal/platform/middleware"
	"github.com/maqalahq/maqala/internal/taxonomy"
)

// # Server Definitions

// Server owns the chi router and the underlying [http.Server].
//
// A single instance is built in main.go with every dependency injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers lists the handler sets of every mounted domain.
//
// # Usage
//
// Adding a domain means adding a field here and a Mount call below.
type Handlers struct {
	// Liveness serves /health — 200 whenever the process is up.
	Liveness http.HandlerFunc

	// Readiness serves /ready — 200 only when all dependencies respond.
	Readiness http.HandlerFunc

	// Article covers publishing, dual-language editing, and translation.
	Article *article.Handler

	// Taxonomy covers categories and series.
	Taxonomy *taxonomy.Handler
}

// # Server Initialization

// NewServer builds the router, installs the global middleware chain, and
// registers every route group.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware, listed in execution order.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain route groups under the versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/articles", h.Article.Routes())
		api.Mount("/categories", h.Taxonomy.CategoryRoutes())
		api.Mount("/series", h.Taxonomy.SeriesRoutes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts accepting connections.
//
// It blocks until the server closes or fails.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
