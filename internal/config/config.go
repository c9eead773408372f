package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the contact relay
type Config struct {
	// Runtime Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"API_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`
	LogRequests bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// reCAPTCHA Configuration
	// Kept as a string: only a case-insensitive "true" turns verification on.
	RecaptchaFlag      string `env:"ENABLE_RECAPTCHA" envDefault:"false"`
	RecaptchaSecret    string `env:"RECAPTCHA_SECRET"`
	RecaptchaVerifyURL string `env:"RECAPTCHA_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`

	// Mail Configuration
	FromEmail  string `env:"FROM_EMAIL"`
	ToEmail    string `env:"TO_EMAIL"`
	AWSRegion  string `env:"AWS_REGION" envDefault:"us-east-1"`
	MailDriver string `env:"MAIL_DRIVER" envDefault:"ses"`

	// CORS Configuration
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"contactrelay"`
}

// Mail drivers
const (
	MailDriverSES = "ses"
	MailDriverLog = "log"
)

// RecaptchaEnabled reports whether submissions must carry a verified token
func (c *Config) RecaptchaEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(c.RecaptchaFlag), "true")
}

// IsProduction reports whether the relay runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables that are already set,
		// so the Lambda environment always wins over local files.
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse builds the configuration from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.MailDriver = strings.ToLower(strings.TrimSpace(cfg.MailDriver))
	switch cfg.MailDriver {
	case MailDriverSES, MailDriverLog:
	default:
		return nil, fmt.Errorf("unsupported MAIL_DRIVER %q", cfg.MailDriver)
	}

	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	// Ensure log directory exists
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	return cfg, nil
}
