package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/models"
)

// ContentService implements post and category operations on top of the stores.
type ContentService struct {
	posts      database.PostStore
	categories database.CategoryStore
	now        func() time.Time
}

type ContentOption func(*ContentService)

// WithContentClock overrides the time source used for created/updated timestamps.
func WithContentClock(now func() time.Time) ContentOption {
	return func(s *ContentService) {
		s.now = now
	}
}

func NewContentService(posts database.PostStore, categories database.CategoryStore, opts ...ContentOption) *ContentService {
	s := &ContentService{
		posts:      posts,
		categories: categories,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is UTC at millisecond resolution so every backend round-trips it unchanged.
func (s *ContentService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *ContentService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.categories.FindAll(ctx)
}

// CreateCategory always inserts; an existing category with the same name is not an error.
func (s *ContentService) CreateCategory(ctx context.Context, name, description string) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   s.timestamp(),
	}
	if err := s.categories.Add(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *ContentService) ListPosts(ctx context.Context, publishedOnly bool) ([]*models.Post, error) {
	return s.posts.FindAll(ctx, publishedOnly)
}

func (s *ContentService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *ContentService) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	excerpt := draft.Excerpt
	if excerpt == "" && draft.Content != "" {
		excerpt = DeriveExcerpt(draft.Content)
	}

	now := s.timestamp()
	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     draft.Title,
		Content:   draft.Content,
		Excerpt:   excerpt,
		Category:  draft.Category,
		ImageURL:  draft.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
		Published: draft.IsPublished(),
	}
	if err := s.posts.Add(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost applies the fields present in patch and refreshes updated_at.
// Non-empty content always regenerates the excerpt, replacing any excerpt sent
// in the same patch.
func (s *ContentService) UpdatePost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	fields := database.Fields{"updated_at": s.timestamp()}
	if v, ok := patch.Title.Get(); ok {
		fields["title"] = v
	}
	if v, ok := patch.Excerpt.Get(); ok {
		fields["excerpt"] = v
	}
	if v, ok := patch.Content.Get(); ok {
		fields["content"] = v
		if v != "" {
			fields["excerpt"] = DeriveExcerpt(v)
		}
	}
	if v, ok := patch.Category.Get(); ok {
		fields["category"] = v
	}
	if v, ok := patch.ImageURL.Get(); ok {
		fields["image_url"] = v
	}
	if v, ok := patch.Published.Get(); ok {
		fields["published"] = v
	}

	if err := s.posts.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return s.posts.FindByID(ctx, id)
}

func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
