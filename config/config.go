package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// APIBaseURL is the root of the remote entity service (users, categories, events).
	APIBaseURL     string
	RequestTimeout time.Duration

	// SessionTTL is how long an idle draft or event page is kept.
	SessionTTL time.Duration

	// DBUrl enables the orphan ledger when set.
	DBUrl string

	AllowedOrigins []string

	Mail MailConfig
}

// MailConfig configures operator alerts for orphaned users.
type MailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AlertTo            string
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           getenvDefault("PORT", "8080"),
		LogLevel:       strings.ToLower(getenvDefault("LOG_LEVEL", "info")),
		APIBaseURL:     strings.TrimSuffix(getenvDefault("API_BASE_URL", "http://localhost:3000"), "/"),
		RequestTimeout: getenvDuration("REQUEST_TIMEOUT", 10*time.Second),
		SessionTTL:     getenvDuration("SESSION_TTL", 30*time.Minute),
		DBUrl:          strings.TrimSpace(os.Getenv("DATABASE_URL")),
		AllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		Mail: MailConfig{
			Provider:           getenvDefault("MAIL_PROVIDER", "noop"),
			FromAddress:        strings.TrimSpace(os.Getenv("MAIL_FROM_ADDRESS")),
			FromName:           strings.TrimSpace(os.Getenv("MAIL_FROM_NAME")),
			AlertTo:            strings.TrimSpace(os.Getenv("ORPHAN_ALERT_TO")),
			Region:             getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:        strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID")),
			SecretAccessKey:    strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY")),
			InsecureSkipVerify: getenvBool("SES_INSECURE_SKIP_VERIFY", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be > 0")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be > 0")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL: %q", c.APIBaseURL)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	if c.Mail.Provider == "ses" && c.Mail.FromAddress == "" {
		return errors.New("MAIL_FROM_ADDRESS is required when MAIL_PROVIDER=ses")
	}
	return nil
}

func getenvDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
