package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/blog-cms-backend/api"
	"github.com/rpupo63/blog-cms-backend/config"
	"github.com/rpupo63/blog-cms-backend/database"
	"github.com/rpupo63/blog-cms-backend/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}
	setupLogging(cfg)

	log.Info().Str("db_type", cfg.DBType).Msg("Initializing app...")

	currentDB, err := openDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// the store is already closed when run returns
	if err := run(cfg, currentDB); err != nil {
		log.Fatal().Err(err).Msg("Error initializing app")
	}
}

// run seeds the store, serves until interrupted, and closes the store on every return path.
func run(cfg config.Config, currentDB database.Database) error {
	defer closeDatabase(currentDB)

	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET is the built-in default; tokens can be forged by anyone who knows it")
	}
	if cfg.UsesDefaultAdminPassword() {
		log.Warn().Str("username", cfg.AdminUsername).Msg("ADMIN_PASSWORD is the built-in default; set it before exposing the server")
	}

	credentials := services.NewCredentialService(cfg.JWTSecret, cfg.TokenTTL, cfg.BcryptCost)

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err := services.NewBootstrapper(currentDB.UserRepo(), currentDB.CategoryRepo(), credentials, cfg.AdminUsername, cfg.AdminPassword).Run(bootstrapCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("initialize data: %w", err)
	}

	svc := api.Services{
		Auth:    services.NewAuthService(currentDB.UserRepo(), credentials),
		Content: services.NewContentService(currentDB.PostRepo(), currentDB.CategoryRepo()),
	}

	errChannel := make(chan error, 2)

	server := api.NewServer(cfg, currentDB, svc)

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
	return nil
}

func closeDatabase(currentDB database.Database) {
	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := currentDB.Close(closeCtx); err != nil {
		log.Error().Err(err).Msg("Error closing database")
	}
}

// openDatabase connects to the backend named by DB_TYPE and verifies it answers a ping.
func openDatabase(cfg config.Config) (database.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	switch cfg.DBType {
	case "mongo":
		log.Info().Str("db_name", cfg.DBName).Msg("Connecting to MongoDB...")
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURL, cfg.DBName)
		if err != nil {
			return database.Database{}, err
		}
		return database.NewMongo(client, db), nil
	case "postgres", "sqlite":
		log.Info().Msgf("Connecting to %s database...", cfg.DBType)
		db, err := database.OpenGorm(cfg.DBType, cfg.DatabaseURL)
		if err != nil {
			return database.Database{}, err
		}
		currentDB := database.NewGorm(db)
		if err := currentDB.Ping(ctx); err != nil {
			return database.Database{}, err
		}
		return currentDB, nil
	default:
		return database.Database{}, fmt.Errorf("unsupported DB_TYPE %q", cfg.DBType)
	}
}

func setupLogging(cfg config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
