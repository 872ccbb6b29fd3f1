package scenario

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers simulation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Post("/market-data", h.MarketData)

		r.Route("/scenarios", func(r chi.Router) {
			r.Post("/mock", h.MockScenarios)
			r.Post("/export", h.ExportScenario)
		})
	})
}
