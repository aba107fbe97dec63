package database

import (
	"context"
	"errors"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns all categories in creation order
func (r *CategoryRepo) FindAll(ctx context.Context) ([]*models.Category, error) {
	categories := make([]*models.Category, 0)
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, errs.NewDatastoreError("find", "categories", err)
	}
	return categories, nil
}

// FindByName returns the first category carrying the given name
func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("Category")
	}
	if err != nil {
		return nil, errs.NewDatastoreError("find", "category", err)
	}
	return &category, nil
}

// Add inserts a new category into the database
func (r *CategoryRepo) Add(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return errs.NewDatastoreError("create", "category", err)
	}
	return nil
}
