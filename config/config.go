package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpupo63/blog-cms-backend/errs"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultJWTSecret     = "your-secret-key-here"
	DefaultAdminPassword = "Adoegyzseni"
)

type Config struct {
	Port     string
	DBType   string
	MongoURL string
	DBName   string
	// DatabaseURL is the GORM DSN used when DBType is postgres or sqlite
	DatabaseURL string

	JWTSecret     string
	TokenTTL      time.Duration
	BcryptCost    int
	AdminUsername string
	AdminPassword string

	AcceptedOrigins []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration

	LogLevel  string
	LogFormat string
}

type Option func(*viper.Viper)

// WithConfigFile reads settings from an explicit file instead of searching for config.yml.
func WithConfigFile(path string) Option {
	return func(v *viper.Viper) {
		v.SetConfigFile(path)
	}
}

// Load reads .env (if present), then an optional config.yml, then the
// environment. Environment variables win over the file.
func Load(opts ...Option) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AutomaticEnv()
	for _, opt := range opts {
		opt(v)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Port:            v.GetString("PORT"),
		DBType:          strings.ToLower(v.GetString("DB_TYPE")),
		MongoURL:        v.GetString("MONGO_URL"),
		DBName:          v.GetString("DB_NAME"),
		DatabaseURL:     v.GetString("DATABASE_URL"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		TokenTTL:        v.GetDuration("TOKEN_TTL"),
		BcryptCost:      v.GetInt("BCRYPT_COST"),
		AdminUsername:   v.GetString("ADMIN_USERNAME"),
		AdminPassword:   v.GetString("ADMIN_PASSWORD"),
		AcceptedOrigins: splitOrigins(v.GetString("ACCEPTED_ORIGINS")),
		ReadTimeout:     time.Duration(v.GetInt("READ_TIMEOUT_SECONDS")) * time.Second,
		WriteTimeout:    time.Duration(v.GetInt("WRITE_TIMEOUT_SECONDS")) * time.Second,
		IdleTimeout:     time.Duration(v.GetInt("IDLE_TIMEOUT_SECONDS")) * time.Second,
		LogLevel:        strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:       strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8001")
	v.SetDefault("DB_TYPE", "mongo")
	v.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	v.SetDefault("DB_NAME", "blog_database")
	v.SetDefault("DATABASE_URL", "blog.db")
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", DefaultAdminPassword)
	v.SetDefault("ACCEPTED_ORIGINS", "*")
	v.SetDefault("READ_TIMEOUT_SECONDS", 15)
	v.SetDefault("WRITE_TIMEOUT_SECONDS", 15)
	v.SetDefault("IDLE_TIMEOUT_SECONDS", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c Config) Validate() error {
	switch c.DBType {
	case "mongo", "postgres", "sqlite":
	default:
		return errs.NewConfigInvalidError("DB_TYPE", fmt.Sprintf("unsupported value %q", c.DBType))
	}
	if c.Port == "" {
		return errs.NewConfigInvalidError("PORT", "must not be empty")
	}
	if c.JWTSecret == "" {
		return errs.NewConfigInvalidError("JWT_SECRET", "must not be empty")
	}
	if c.TokenTTL <= 0 {
		return errs.NewConfigInvalidError("TOKEN_TTL", "must be positive")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return errs.NewConfigInvalidError("BCRYPT_COST", fmt.Sprintf("must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return errs.NewConfigInvalidError("ADMIN_USERNAME", "admin credentials must not be empty")
	}
	if c.DBType == "mongo" && (c.MongoURL == "" || c.DBName == "") {
		return errs.NewConfigInvalidError("MONGO_URL", "MONGO_URL and DB_NAME are required for mongo")
	}
	if c.DBType != "mongo" && c.DatabaseURL == "" {
		return errs.NewConfigInvalidError("DATABASE_URL", "required for "+c.DBType)
	}
	return nil
}

// UsesDefaultSecret reports whether tokens are signed with the published default key.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func (c Config) UsesDefaultAdminPassword() bool {
	return c.AdminPassword == DefaultAdminPassword
}

func (c Config) Address() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}
