package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder      Responder
	logger         zerolog.Logger
	contentService *services.ContentService
}

func newCategoryHandler(contentService *services.ContentService) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		contentService: contentService,
	}
}

// getAllCategories lists every category
// @Summary Get all categories
// @Description Retrieves all categories in creation order
// @Tags Categories
// @Produce json
// @Success 200 {array} models.Category "List of categories"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching categories"
// @Router /api/categories [get]
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.contentService.ListCategories(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, categories)
	}
}

// createCategory adds a category. Names are not required to be unique.
// @Summary Create category
// @Description Creates a new category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category data"
// @Success 200 {object} models.Category "Created category"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid category data"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating category"
// @Router /api/categories [post]
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		var req CategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("category", err))
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		category, err := h.contentService.CreateCategory(r.Context(), req.Name, req.Description)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("categoryID", category.ID).Str("name", category.Name).Msg("Category created")
		h.responder.WriteJSON(w, category)
	}
}
