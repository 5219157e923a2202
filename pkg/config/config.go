package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// devJwtSecret is only used outside production when JWT_SECRET is unset.
	devJwtSecret = "portfolio-dev-secret-change-me"
)

type Config struct {
	Environment string
	DatabaseURL string
	Host        string
	Port        string

	JwtSecret    string
	JwtExpiresIn time.Duration

	CORSOrigins []string

	UploadDir     string
	MaxUploadSize int64

	EmailHost string
	EmailPort int
	EmailUser string
	EmailPass string

	AdminUsername string
	AdminPassword string

	LogLevel string
	LogFile  string

	CacheTTL time.Duration

	// Warnings holds problems found while loading. They are logged once the
	// logger has been configured.
	Warnings []string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debugf("LoadConfig: no .env file loaded: %v", err)
	}

	env := &envReader{}
	cfg := &Config{
		Environment:   getenv("APP_ENV", EnvDevelopment),
		DatabaseURL:   getenv("DATABASE_URL", "file:portfolio.db"),
		Host:          getenv("HOST", "127.0.0.1"),
		Port:          getenv("PORT", "5000"),
		JwtSecret:     os.Getenv("JWT_SECRET"),
		JwtExpiresIn:  env.getDuration("JWT_EXPIRES_IN", 24*time.Hour),
		CORSOrigins:   splitList(getenv("CORS_ORIGIN", "http://localhost:3000")),
		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		MaxUploadSize: env.getInt64("MAX_UPLOAD_SIZE", 5*1024*1024),
		EmailHost:     getenv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:     int(env.getInt64("EMAIL_PORT", 587)),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		CacheTTL:      env.getDuration("CACHE_TTL", 5*time.Minute),
	}

	if cfg.JwtSecret == "" && !cfg.IsProduction() {
		env.warnf("JWT_SECRET is not set, falling back to the development secret. Never run production like this.")
		cfg.JwtSecret = devJwtSecret
	}
	cfg.Warnings = env.warnings

	return cfg
}

// Validate reports configuration that would make the server unsafe or unusable.
func (c *Config) Validate() error {
	if c.JwtSecret == "" {
		return errors.New("JWT_SECRET environment variable is not set. This is critical for authentication")
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.JwtExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be a positive duration")
	}
	if c.MaxUploadSize <= 0 {
		return errors.New("MAX_UPLOAD_SIZE must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// MailEnabled is false when SMTP credentials are missing; notifications are then skipped.
func (c *Config) MailEnabled() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// envReader parses typed values and remembers what it had to fall back on.
type envReader struct {
	warnings []string
}

func (r *envReader) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func (r *envReader) getInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		r.warnf("Invalid integer for %s=%q, using default %d", key, raw, def)
		return def
	}
	return v
}

// getDuration accepts Go durations ("90m") and the "<n>d" day form used by older .env files.
func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if strings.HasSuffix(raw, "d") {
		if days, err := strconv.Atoi(strings.TrimSuffix(raw, "d")); err == nil {
			return time.Duration(days) * 24 * time.Hour
		}
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		r.warnf("Invalid duration for %s=%q, using default %s", key, raw, def)
		return def
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimRight(strings.TrimSpace(part), "/"); v != "" {
			out = append(out, v)
		}
	}
	return out
}
