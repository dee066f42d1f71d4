// Package api provides the HTTP API server and handlers for the BookNote application.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/booknoteapp/booknote-server/internal/ratelimit"
	"github.com/booknoteapp/booknote-server/internal/sse"
	"github.com/booknoteapp/booknote-server/internal/store"
	"github.com/booknoteapp/booknote-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       *store.Store
	services    *Services
	sseHandler  *sse.Handler
	sseManager  *sse.Manager
	router      *chi.Mux
	api         huma.API
	validator   *validation.Validator
	saveLimiter *ratelimit.KeyedRateLimiter
	logger      *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, sseHandler *sse.Handler, sseManager *sse.Manager, saveLimiter *ratelimit.KeyedRateLimiter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		store:       st,
		services:    services,
		sseHandler:  sseHandler,
		sseManager:  sseManager,
		router:      chi.NewRouter(),
		validator:   validation.New(),
		saveLimiter: saveLimiter,
		logger:      logger,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig("BookNote API", "1.0.0")
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)
	s.api = humachi.New(s.router, humaConfig)

	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerLibraryRoutes()
	s.registerBookRoutes()
	s.registerChapterRoutes()
	s.registerNoteRoutes()
	s.registerSearchRoutes()
	s.registerNavigationRoutes()
	s.setupStreamRoute()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The web client is served from a different origin during development.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Last-Event-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if s.saveLimiter != nil {
		s.router.Use(SaveRateLimitMiddleware(s.saveLimiter, s.logger))
	}
}

// setupStreamRoute mounts the SSE stream outside huma; the streaming response
// does not fit the request/response model huma handles.
func (s *Server) setupStreamRoute() {
	if s.sseHandler != nil {
		s.router.Get("/api/v1/sync/stream", s.sseHandler.ServeHTTP)
	}
}
