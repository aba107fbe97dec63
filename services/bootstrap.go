package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"github.com/rs/zerolog/log"
)

type DefaultCategory struct {
	Name        string
	Description string
}

// DefaultCategories are seeded at startup when no category with the same name exists.
var DefaultCategories = []DefaultCategory{
	{Name: "Technológia", Description: "Technológiai témájú bejegyzések"},
	{Name: "Életmód", Description: "Életmód és személyes bejegyzések"},
	{Name: "Utazás", Description: "Utazási élmények és tippek"},
	{Name: "Gasztronómia", Description: "Receptek és kulináris élmények"},
	{Name: "Kultúra", Description: "Művészet, zene, irodalom"},
}

// Bootstrapper seeds the admin account and default categories. Every step is a
// check-then-insert, so running it again never modifies existing records.
type Bootstrapper struct {
	users         database.UserStore
	categories    database.CategoryStore
	credentials   *CredentialService
	adminUsername string
	adminPassword string
	now           func() time.Time
}

func NewBootstrapper(users database.UserStore, categories database.CategoryStore, credentials *CredentialService, adminUsername, adminPassword string) *Bootstrapper {
	return &Bootstrapper{
		users:         users,
		categories:    categories,
		credentials:   credentials,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// Run must succeed before the server accepts traffic.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.seedAdmin(ctx); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if err := b.seedCategories(ctx); err != nil {
		return fmt.Errorf("seed default categories: %w", err)
	}
	return nil
}

func (b *Bootstrapper) seedAdmin(ctx context.Context) error {
	_, err := b.users.FindByUsername(ctx, b.adminUsername)
	if err == nil {
		log.Debug().Str("username", b.adminUsername).Msg("Admin user already exists")
		return nil
	}
	if !errs.IsNotFound(err) {
		return err
	}

	hash, err := b.credentials.HashPassword(b.adminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		ID:           uuid.NewString(),
		Username:     b.adminUsername,
		PasswordHash: hash,
		CreatedAt:    b.now().UTC().Truncate(time.Millisecond),
	}
	if err := b.users.Add(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("username", b.adminUsername).Msg("Admin user created")
	return nil
}

func (b *Bootstrapper) seedCategories(ctx context.Context) error {
	for _, def := range DefaultCategories {
		_, err := b.categories.FindByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !errs.IsNotFound(err) {
			return err
		}

		category := &models.Category{
			ID:          uuid.NewString(),
			Name:        def.Name,
			Description: def.Description,
			CreatedAt:   b.now().UTC().Truncate(time.Millisecond),
		}
		if err := b.categories.Add(ctx, category); err != nil {
			return err
		}
		log.Info().Str("category", def.Name).Msg("Default category created")
	}
	return nil
}
