package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prodverse/multiverse-backend/internal/api/docs"
	"github.com/prodverse/multiverse-backend/internal/api/middleware"
	scenarioapi "github.com/prodverse/multiverse-backend/internal/api/scenario"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(scenarioHandler *scenarioapi.Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests
	r.Use(middleware.CORS)           // Handle CORS
	// Generation waits on the model upstream, so the global timeout has
	// to sit above the completion request budget.
	r.Use(chimiddleware.Timeout(150 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	scenarioapi.RegisterRoutes(r, scenarioHandler)

	return r
}
