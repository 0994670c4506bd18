// Package api wires the admin and generation endpoints onto a chi router.
package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/hoanghai1803/localpages/internal/api/handlers"
	"github.com/hoanghai1803/localpages/internal/config"
	"github.com/hoanghai1803/localpages/internal/content"
	"github.com/hoanghai1803/localpages/internal/site"
	"github.com/hoanghai1803/localpages/internal/storage"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(store *storage.Store, generator *content.Generator, scheduler *content.Scheduler, catalog *site.Catalog, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	r.Route("/api", func(api chi.Router) {
		api.Post("/generate", handlers.Generate(generator))

		api.Get("/content", handlers.ListContent(store))
		api.Get("/content/{key}", handlers.GetContent(store))
		api.Delete("/content/{key}", handlers.DeleteContent(store))
		api.Post("/content/{key}/review", handlers.ReviewContent(store))
		api.Post("/content/{key}/regenerate", handlers.RegenerateContent(generator, catalog))

		api.Get("/blog", handlers.ListBlogPosts(store))
		api.Get("/blog/topics", handlers.BlogTopics())
		api.Post("/blog/generate", handlers.GenerateBlogBatch(scheduler))
		api.Get("/blog/{id}", handlers.GetBlogPost(store))
		api.Patch("/blog/{id}", handlers.UpdateBlogPost(store))
		api.Delete("/blog/{id}", handlers.DeleteBlogPost(store))

		api.Get("/quality", handlers.QualityReport(store, catalog, cfg.Quality.OverlapThreshold))
		api.Get("/quality/{key}", handlers.QualityScore(store, catalog, cfg.Quality.OverlapThreshold))
	})

	return r
}
