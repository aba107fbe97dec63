package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rpupo63/blog-cms-backend/config"
	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg config.Config, database database.Database, svc Services) Server {
	// Capture startup time
	startupTime := time.Now()

	router := newRouter(database, svc, withConfig(cfg))

	server := &http.Server{
		Addr:         cfg.Address(), // Bind to 0.0.0.0 for external access
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}
}

type router struct {
	config config.Config
}

func withConfig(c config.Config) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func newRouter(database database.Database, svc Services, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	metrics := newRequestMetrics()

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(requestLogger(router.config.LogFormat, metrics))
	chiRouter.Use(middleware.Recoverer)

	chiRouter.Use(cors.Handler(corsOptions(router.config.AcceptedOrigins)))

	// Initialize all handlers
	handlers := initializeHandlers(database, svc)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(svc.Auth)

	setupRoutes(chiRouter, handlers, authMiddleware, metrics.handler())

	return chiRouter
}

// corsOptions allows any origin when the list is empty or contains "*".
// Credentials are only allowed for an explicit origin list.
func corsOptions(acceptedOrigins []string) cors.Options {
	options := cors.Options{
		AllowedOrigins: acceptedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}
	wildcard := len(acceptedOrigins) == 0
	for _, origin := range acceptedOrigins {
		if origin == "*" {
			wildcard = true
		}
	}
	if wildcard {
		options.AllowedOrigins = []string{"*"}
	} else {
		options.AllowCredentials = true
	}
	return options
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) Uptime() time.Duration {
	return time.Since(s.startupTime)
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Dur("uptime", s.Uptime()).Msg("HttpServer gracefully shut down")
	}
}
