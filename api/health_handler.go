package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newHealthHandler(database database.Database) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// health reports whether the store answers a ping
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Store reachable"
// @Failure 503 {object} ErrorResponse "Store unreachable"
// @Router /health [get]
func (h healthHandler) health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.database.Ping(ctx); err != nil {
			h.logger.Error().Err(err).Msg("Store ping failed")
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "Store unavailable"))
			return
		}

		h.responder.WriteJSON(w, HealthResponse{Status: "ok"})
	}
}
