package database

import (
	"context"

	"github.com/rpupo63/blog-cms-backend/models"
)

// Fields maps stored field names (identical for BSON documents and SQL columns)
// to their new values in a partial update.
type Fields map[string]any

// PostStore is the posts collection.
type PostStore interface {
	FindAll(ctx context.Context, publishedOnly bool) ([]*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Add(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}

// CategoryStore is the categories collection.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	Add(ctx context.Context, category *models.Category) error
}

// UserStore is the users collection.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Add(ctx context.Context, user *models.User) error
}

// Database bundles one repository per collection over a shared backend connection.
// Lookups by identifier return an errs.ErrNotFound error when nothing matches.
type Database struct {
	postRepo     PostStore
	categoryRepo CategoryStore
	userRepo     UserStore
	ping         func(context.Context) error
	close        func(context.Context) error
}

// Accessor methods for each repository

func (d Database) PostRepo() PostStore {
	return d.postRepo
}

func (d Database) CategoryRepo() CategoryStore {
	return d.categoryRepo
}

func (d Database) UserRepo() UserStore {
	return d.userRepo
}

// Ping checks that the backend is reachable.
func (d Database) Ping(ctx context.Context) error {
	if d.ping == nil {
		return nil
	}
	return d.ping(ctx)
}

func (d Database) Close(ctx context.Context) error {
	if d.close == nil {
		return nil
	}
	return d.close(ctx)
}
