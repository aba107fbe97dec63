package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/models"
	"github.com/rpupo63/blog-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder      Responder
	logger         zerolog.Logger
	contentService *services.ContentService
}

func newPostHandler(contentService *services.ContentService) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		contentService: contentService,
	}
}

// getAllPosts lists posts, newest first
// @Summary Get all posts
// @Description Retrieves posts ordered by creation time descending. Only published posts are returned unless published_only=false.
// @Tags Posts
// @Produce json
// @Param published_only query bool false "Return only published posts" default(true)
// @Success 200 {array} models.Post "List of posts"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid published_only"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching posts"
// @Router /api/posts [get]
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly, err := publishedOnlyParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		posts, err := h.contentService.ListPosts(r.Context(), publishedOnly)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getPost retrieves a post by ID regardless of its published flag
// @Summary Get post
// @Description Retrieves a single post by ID
// @Tags Posts
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} models.Post "Post details"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching post"
// @Router /api/posts/{postID} [get]
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		post, err := h.contentService.GetPost(r.Context(), chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a new post
// @Summary Create post
// @Description Creates a post. The excerpt is derived from the content when not supplied; published defaults to true.
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post body models.PostDraft true "Post data"
// @Success 200 {object} models.Post "Created post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating post"
// @Router /api/posts [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var draft models.PostDraft
		if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}

		if strings.TrimSpace(draft.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if strings.TrimSpace(draft.Content) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if strings.TrimSpace(draft.Category) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}

		post, err := h.contentService.CreatePost(r.Context(), draft)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("postID", post.ID).Bool("published", post.Published).Msg("Post created")
		h.responder.WriteJSON(w, post)
	}
}

// updatePost applies a partial update
// @Summary Update post
// @Description Overwrites only the fields present in the body. New content regenerates the excerpt.
// @Tags Posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Param post body models.PostPatch true "Fields to change"
// @Success 200 {object} models.Post "Updated post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid post data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating post"
// @Router /api/posts/{postID} [put]
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var patch models.PostPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}

		post, err := h.contentService.UpdatePost(r.Context(), chi.URLParam(r, "postID"), patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("postID", post.ID).Msg("Post updated")
		h.responder.WriteJSON(w, post)
	}
}

// deletePost removes a post
// @Summary Delete post
// @Description Deletes a post by ID
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Param postID path string true "Post ID"
// @Success 200 {object} MessageResponse "Success message"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting post"
// @Router /api/posts/{postID} [delete]
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		postID := chi.URLParam(r, "postID")
		if err := h.contentService.DeletePost(r.Context(), postID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("postID", postID).Msg("Post deleted")
		h.responder.WriteJSON(w, MessageResponse{Message: "Post deleted successfully"})
	}
}

// publishedOnlyParam reads published_only (or publishedOnly); absent means true.
func publishedOnlyParam(r *http.Request) (bool, error) {
	query := r.URL.Query()
	name := "published_only"
	raw := query.Get(name)
	if raw == "" {
		name = "publishedOnly"
		raw = query.Get(name)
	}
	if raw == "" {
		return true, nil
	}

	switch strings.ToLower(raw) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	}
	return false, errs.NewInvalidFieldError(name, "must be a boolean")
}
