package api

import (
	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/services"
)

// Services are the domain services the handlers delegate to
type Services struct {
	Auth    *services.AuthService
	Content *services.ContentService
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, svc Services) *routeHandlers {
	return &routeHandlers{
		authHandler:     newAuthHandler(svc.Auth),
		categoryHandler: newCategoryHandler(svc.Content),
		postHandler:     newPostHandler(svc.Content),
		healthHandler:   newHealthHandler(database),
	}
}
