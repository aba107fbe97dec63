package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rpupo63/blog-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService *services.AuthService
}

func newAuthHandler(authService *services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
	}
}

// login exchanges admin credentials for a bearer token
// @Summary Log in
// @Description Verifies username and password and issues a bearer token valid for 24 hours
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Username and password"
// @Success 200 {object} TokenResponse "Bearer token"
// @Failure 400 {object} ErrorResponse "Bad Request - Malformed body or missing field"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}
		if req.Username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		token, err := h.authService.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			if errs.IsInvalidCredentialsError(err) {
				h.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
			}
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Str("username", req.Username).Msg("Login succeeded")
		h.responder.WriteJSON(w, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// verify reports the subject of the presented token
// @Summary Verify token
// @Description Confirms that the bearer token is valid and returns its username
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse "Token is valid"
// @Failure 401 {object} ErrorResponse "Unauthorized - Missing or invalid token"
// @Router /api/auth/verify [get]
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware
		username, err := ctxGetUsername(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingSubjectError())
			return
		}

		h.responder.WriteJSON(w, VerifyResponse{Username: username, Authenticated: true})
	}
}
