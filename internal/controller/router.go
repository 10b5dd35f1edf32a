// internal/controller/router.go
package controller

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the route table for the campaign API.
func NewRouter(c *CampaignController, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", c.Health)

	r.Post("/campaigns", c.CreateCampaign)
	r.Get("/campaigns", c.ListCampaigns)
	r.Get("/campaigns/{id}", c.GetCampaign)
	r.Post("/campaigns/{id}/contacts", c.AddContacts)
	r.Post("/campaigns/{id}/send", c.SendCampaign)
	r.Get("/campaigns/{id}/stats", c.GetStats)
	r.Get("/campaigns/{id}/messages", c.ListMessages)
	r.Get("/campaigns/{id}/deliveries", c.ListDeliveries)

	return r
}
