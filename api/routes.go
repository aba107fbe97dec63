package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public and authenticated API under /api
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, metrics http.Handler) {
	r.Get("/health", handlers.healthHandler.health())
	r.Handle("/metrics", metrics)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", handlers.authHandler.login())

			r.Get("/categories", handlers.categoryHandler.getAllCategories())

			r.Get("/posts", handlers.postHandler.getAllPosts())
			r.Get("/posts/{postID}", handlers.postHandler.getPost())
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/auth/verify", handlers.authHandler.verify())

			r.Post("/categories", handlers.categoryHandler.createCategory())

			r.Post("/posts", handlers.postHandler.createPost())
			r.Put("/posts/{postID}", handlers.postHandler.updatePost())
			r.Delete("/posts/{postID}", handlers.postHandler.deletePost())
		})
	})
}
