package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"user-service/interfaces/http/rest/handlers"
	"user-service/interfaces/http/rest/middleware"
	"user-service/pkg/api"
	pkgerrors "user-service/pkg/errors"
	"user-service/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// Options toggles the optional parts of the router
type Options struct {
	EnableCORS     bool
	AllowedOrigins []string

	// Metrics enables request metrics and the /metrics endpoint when set
	Metrics *observability.Collector

	// Tracer opens an X-Ray segment per request when set
	Tracer *observability.Tracer

	// ReadinessCheck backs /ready. A nil check always reports ready.
	ReadinessCheck func(ctx context.Context) error
}

// Router creates and configures the HTTP router
type Router struct {
	service      handlers.UserService
	errorHandler *pkgerrors.ErrorHandler
	opts         Options
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	service handlers.UserService,
	errorHandler *pkgerrors.ErrorHandler,
	opts Options,
	logger *zap.Logger,
) *Router {
	return &Router{
		service:      service,
		errorHandler: errorHandler,
		opts:         opts,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() *chi.Mux {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errorHandler.Middleware)

	if rt.opts.Tracer != nil {
		router.Use(rt.opts.Tracer.Middleware)
	}
	if rt.opts.Metrics != nil {
		router.Use(observability.MetricsMiddleware(rt.opts.Metrics))
	}

	if rt.opts.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: rt.opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.opts.Metrics != nil {
		router.Handle("/metrics", rt.opts.Metrics.Handler())
	}

	// API documentation
	router.Get("/docs/openapi.yaml", api.YAMLHandler)
	router.Get("/docs/openapi.json", api.JSONHandler)

	userHandler := handlers.NewUserHandler(rt.service, rt.errorHandler, rt.logger)
	router.Route("/users", userHandler.Routes)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	writeStatus(w, http.StatusOK, "healthy")
}

// readinessCheck reports whether the store is reachable
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	if rt.opts.ReadinessCheck != nil {
		if err := rt.opts.ReadinessCheck(req.Context()); err != nil {
			rt.logger.Warn("Readiness check failed", zap.Error(err))
			writeStatus(w, http.StatusServiceUnavailable, "unavailable")
			return
		}
	}
	writeStatus(w, http.StatusOK, "ready")
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
}
