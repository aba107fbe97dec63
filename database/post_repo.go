package database

import (
	"context"
	"errors"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns posts newest first, optionally only the published ones
func (r *PostRepo) FindAll(ctx context.Context, publishedOnly bool) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, errs.NewDatastoreError("find", "posts", err)
	}
	return posts, nil
}

// FindByID returns a post by its ID
func (r *PostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFound("Post")
	}
	if err != nil {
		return nil, errs.NewDatastoreError("find", "post", err)
	}
	return &post, nil
}

// Add inserts a new post into the database
func (r *PostRepo) Add(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return errs.NewDatastoreError("create", "post", err)
	}
	return nil
}

// Update sets only the given columns on the post with the given ID
func (r *PostRepo) Update(ctx context.Context, id string, fields Fields) error {
	result := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(map[string]any(fields))
	if result.Error != nil {
		return errs.NewDatastoreError("update", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("Post")
	}
	return nil
}

// Delete removes a post from the database by id
func (r *PostRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return errs.NewDatastoreError("delete", "post", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewNotFound("Post")
	}
	return nil
}
