package routes

import (
	"net/http"

	"github.com/J0SEF4/HackathonSaludIA/internal/api/handlers"
	"github.com/J0SEF4/HackathonSaludIA/internal/api/middleware"
	"github.com/J0SEF4/HackathonSaludIA/internal/infrastructure/observability"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	priorityHandler *handlers.PriorityHandler
	lostHandler     *handlers.LostHandler
	auditHandler    *handlers.AuditHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	priorityHandler *handlers.PriorityHandler,
	lostHandler *handlers.LostHandler,
	auditHandler *handlers.AuditHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		priorityHandler: priorityHandler,
		lostHandler:     lostHandler,
		auditHandler:    auditHandler,

		cacheMiddleware: cacheMiddleware,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Monitoring endpoints
	r.mux.HandleFunc("GET /api/patients/priority", r.priorityHandler.ListPriority)
	r.mux.HandleFunc("GET /api/patients/lost", r.lostHandler.ListLost)
	r.mux.HandleFunc("GET /api/audit", r.auditHandler.GetAudit)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.Compression(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
