package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "development-only-secret-change-me"

type Config struct {
	// Application
	AppName string
	AppEnv  string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Local session (bbolt file kept next to the database)
	SessionPath string

	// Seed rooms and pictures on first run
	SeedOnStart bool

	// Security
	JWTSecret                string
	JWTExpiry                time.Duration
	TokenPasswordResetExpiry time.Duration

	// Email
	EmailFrom    string
	ResendAPIKey string

	// Observability (optional)
	SentryDSN string

	// Picture storage: "disk" reads ImagesPath, "s3" reads the bucket
	StorageDriver string
	ImagesPath    string
	S3Region      string
	S3Bucket      string
	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string // Optional: for S3-compatible services (MinIO, R2, etc.)
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		AppName: envString("APP_NAME", "Meeting Rooms Scheduler"),
		AppEnv:  envString("APP_ENV", "development"),

		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/mrs.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		SessionPath: envString("SESSION_PATH", "./data/session.db"),
		SeedOnStart: envBool("SEED_ON_START", true),

		JWTSecret:                envString("JWT_SECRET", ""),
		JWTExpiry:                envDuration("JWT_EXPIRY", 8*time.Hour),
		TokenPasswordResetExpiry: envDuration("TOKEN_PASSWORD_RESET_EXPIRY", 10*time.Minute),

		// RESEND_API_KEY optional in development, required in production
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),

		SentryDSN: envString("SENTRY_DSN", ""),

		StorageDriver: envString("STORAGE_DRIVER", "disk"),
		ImagesPath:    envString("IMAGES_PATH", "images"),
		S3Endpoint:    envString("S3_ENDPOINT", ""),
	}

	if cfg.StorageDriver == "s3" {
		cfg.S3Region = envRequired("S3_REGION")
		cfg.S3Bucket = envRequired("S3_BUCKET")
		cfg.S3AccessKey = envRequired("S3_ACCESS_KEY")
		cfg.S3SecretKey = envRequired("S3_SECRET_KEY")
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development logs emails instead of sending them and signs sessions with a fixed secret.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Error("production deployment requires JWT_SECRET")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config without secrets or credentials.
// Safe to log at startup.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:                  c.AppName,
		AppEnv:                   c.AppEnv,
		DBDriver:                 c.DBDriver,
		SessionPath:              c.SessionPath,
		JWTExpiry:                c.JWTExpiry,
		TokenPasswordResetExpiry: c.TokenPasswordResetExpiry,
		EmailFrom:                c.EmailFrom,
		StorageDriver:            c.StorageDriver,
		ImagesPath:               c.ImagesPath,
		S3Region:                 c.S3Region,
		S3Bucket:                 c.S3Bucket,
		S3Endpoint:               c.S3Endpoint,
	}
}
