package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) database.Database {
	t.Helper()
	db, err := database.OpenGorm("sqlite", ":memory:")
	require.NoError(t, err)
	store := database.NewGorm(db)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

// steppingClock advances one second on every call so created/updated times are distinct.
func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func newTestContent(t *testing.T) *ContentService {
	store := newTestDatabase(t)
	return NewContentService(store.PostRepo(), store.CategoryRepo(),
		WithContentClock(steppingClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))))
}

func decodePatch(t *testing.T, body string) models.PostPatch {
	t.Helper()
	var patch models.PostPatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	post, err := content.CreatePost(ctx, models.PostDraft{
		Title:    "Hello",
		Content:  "<p>Hello <b>World</b></p>",
		Category: "Technológia",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Hello World", post.Excerpt)
	assert.True(t, post.Published)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.Equal(t, time.UTC, post.CreatedAt.Location())

	stored, err := content.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, stored.Title)
	assert.Equal(t, post.Excerpt, stored.Excerpt)
	assert.True(t, post.CreatedAt.Equal(stored.CreatedAt))
}

func TestCreatePostKeepsSuppliedExcerptAndDraftFlag(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)
	draft := false

	post, err := content.CreatePost(ctx, models.PostDraft{
		Title:     "Draft",
		Content:   "<p>body</p>",
		Excerpt:   "my teaser",
		Category:  "Utazás",
		Published: &draft,
	})
	require.NoError(t, err)
	assert.Equal(t, "my teaser", post.Excerpt)
	assert.False(t, post.Published)

	stored, err := content.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, stored.Published)
}

func TestCreatePostIdsAreUnique(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		post, err := content.CreatePost(ctx, models.PostDraft{Title: "same", Content: "same", Category: "same"})
		require.NoError(t, err)
		assert.False(t, seen[post.ID])
		seen[post.ID] = true
	}
}

func TestListPostsFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)
	hidden := false

	first, err := content.CreatePost(ctx, models.PostDraft{Title: "first", Content: "a", Category: "c"})
	require.NoError(t, err)
	_, err = content.CreatePost(ctx, models.PostDraft{Title: "hidden", Content: "b", Category: "c", Published: &hidden})
	require.NoError(t, err)
	third, err := content.CreatePost(ctx, models.PostDraft{Title: "third", Content: "c", Category: "c"})
	require.NoError(t, err)

	published, err := content.ListPosts(ctx, true)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, third.ID, published[0].ID)
	assert.Equal(t, first.ID, published[1].ID)

	all, err := content.ListPosts(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "hidden", all[1].Title)
}

func TestListPostsEmpty(t *testing.T) {
	posts, err := newTestContent(t).ListPosts(context.Background(), true)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	post, err := content.CreatePost(ctx, models.PostDraft{
		Title:    "Original",
		Content:  "<p>old body</p>",
		Category: "Kultúra",
		ImageURL: "https://example.com/a.png",
	})
	require.NoError(t, err)

	t.Run("only present fields change", func(t *testing.T) {
		updated, err := content.UpdatePost(ctx, post.ID, decodePatch(t, `{"title":"Renamed"}`))
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, post.Content, updated.Content)
		assert.Equal(t, post.Excerpt, updated.Excerpt)
		assert.Equal(t, post.ImageURL, updated.ImageURL)
		assert.True(t, post.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
	})

	t.Run("content regenerates excerpt over a supplied one", func(t *testing.T) {
		updated, err := content.UpdatePost(ctx, post.ID,
			decodePatch(t, `{"content":"<h2>new</h2> body","excerpt":"ignored"}`))
		require.NoError(t, err)
		assert.Equal(t, "<h2>new</h2> body", updated.Content)
		assert.Equal(t, "new body", updated.Excerpt)
	})

	t.Run("excerpt alone is stored", func(t *testing.T) {
		updated, err := content.UpdatePost(ctx, post.ID, decodePatch(t, `{"excerpt":"hand written"}`))
		require.NoError(t, err)
		assert.Equal(t, "hand written", updated.Excerpt)
	})

	t.Run("empty values overwrite", func(t *testing.T) {
		updated, err := content.UpdatePost(ctx, post.ID,
			decodePatch(t, `{"image_url":"","published":false,"content":""}`))
		require.NoError(t, err)
		assert.Empty(t, updated.ImageURL)
		assert.False(t, updated.Published)
		assert.Empty(t, updated.Content)
		assert.Equal(t, "hand written", updated.Excerpt)
	})

	t.Run("null is ignored", func(t *testing.T) {
		updated, err := content.UpdatePost(ctx, post.ID, decodePatch(t, `{"title":null}`))
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
	})

	t.Run("empty patch still touches updated_at", func(t *testing.T) {
		before, err := content.GetPost(ctx, post.ID)
		require.NoError(t, err)
		updated, err := content.UpdatePost(ctx, post.ID, models.PostPatch{})
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(before.UpdatedAt))
	})
}

func TestUpdatePostLongContent(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	post, err := content.CreatePost(ctx, models.PostDraft{Title: "t", Content: "short", Category: "c"})
	require.NoError(t, err)

	patch := models.PostPatch{Content: models.Some("<p>" + strings.Repeat("y", 300) + "</p>")}
	updated, err := content.UpdatePost(ctx, post.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("y", 150)+"...", updated.Excerpt)
}

func TestPostNotFound(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	_, err := content.GetPost(ctx, "missing")
	assert.True(t, errs.IsNotFound(err))

	_, err = content.UpdatePost(ctx, "missing", decodePatch(t, `{"title":"x"}`))
	assert.True(t, errs.IsNotFound(err))

	assert.True(t, errs.IsNotFound(content.DeletePost(ctx, "missing")))
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	post, err := content.CreatePost(ctx, models.PostDraft{Title: "t", Content: "c", Category: "c"})
	require.NoError(t, err)

	require.NoError(t, content.DeletePost(ctx, post.ID))

	_, err = content.GetPost(ctx, post.ID)
	assert.True(t, errs.IsNotFound(err))
	assert.True(t, errs.IsNotFound(content.DeletePost(ctx, post.ID)))
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	content := newTestContent(t)

	first, err := content.CreateCategory(ctx, "Zene", "Koncertek")
	require.NoError(t, err)
	second, err := content.CreateCategory(ctx, "Zene", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	categories, err := content.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, first.ID, categories[0].ID)
	assert.Equal(t, "Koncertek", categories[0].Description)
	assert.Equal(t, second.ID, categories[1].ID)
}
