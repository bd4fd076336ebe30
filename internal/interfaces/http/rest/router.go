// Package rest exposes the topic store over HTTP.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/application/handlers"
	"github.com/ersonp/topic-core/internal/infrastructure/observability"
	"github.com/ersonp/topic-core/internal/interfaces/http/rest/middleware"
)

// Router creates and configures the HTTP router.
type Router struct {
	topics    *handlers.TopicHandler
	collector *observability.Collector
	logger    *zap.Logger
	now       func() time.Time
}

// NewRouter creates a new router instance. collector may be nil when metrics
// are disabled.
func NewRouter(topics *handlers.TopicHandler, collector *observability.Collector, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		topics:    topics,
		collector: collector,
		logger:    logger,
		now:       time.Now,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.collector.Middleware)
	// Innermost, so a recovered panic is logged and counted as a 500.
	router.Use(chimiddleware.Recoverer)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, rt.logger, http.StatusNotFound, "Route not found")
	})

	router.Get("/health", rt.healthCheck)
	if rt.collector != nil {
		router.Method(http.MethodGet, "/metrics", rt.collector.Handler())
	}

	topicHandler := NewTopicHandler(rt.topics, rt.collector, rt.logger)
	router.Route("/api/topics", func(r chi.Router) {
		r.Post("/", topicHandler.Create)
		r.Get("/", topicHandler.List)
		r.Get("/{id}", topicHandler.Get)
		r.Put("/{id}", topicHandler.Update)
		r.Delete("/{id}", topicHandler.Delete)
		r.Get("/{id}/versions", topicHandler.Versions)
		r.Get("/{id}/version/{version}", topicHandler.Version)
		r.Get("/{id}/hierarchy", topicHandler.Hierarchy)
		r.Get("/{id}/path/{endId}", topicHandler.Path)
		r.Get("/{id}/audit", topicHandler.Audit)
	})
	router.Get("/api/audit", topicHandler.AuditByAction)

	return router
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, rt.logger, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": rt.now().UTC().Format(time.RFC3339),
	})
}
