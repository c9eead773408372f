package app

import (
	"context"
	"fmt"
	"os"

	"github.com/osa911/contactrelay/internal/api/handlers"
	"github.com/osa911/contactrelay/internal/config"
	"github.com/osa911/contactrelay/internal/logging"
	"github.com/osa911/contactrelay/internal/metrics"
	"github.com/osa911/contactrelay/internal/service"
	"github.com/osa911/contactrelay/internal/telemetry"
)

// App holds the long-lived components shared by every invocation
type App struct {
	Config    *config.Config
	Logger    *logging.Logger
	Metrics   *metrics.Metrics
	Telemetry *telemetry.Provider
	Contact   *handlers.ContactHandler
}

// New loads configuration and builds the logger, telemetry, mail sender and
// contact handler once per process.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg, nil)
}

// NewWithConfig builds the app from cfg. A nil sender selects the one named
// by cfg.MailDriver.
func NewWithConfig(ctx context.Context, cfg *config.Config, sender service.Sender) (*App, error) {
	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Requests:   cfg.LogRequests,
	}
	if err := logging.InitLogger(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := logging.GetGlobalLogger()

	tp, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
	})
	if err != nil {
		return nil, err
	}

	if sender == nil {
		sender, err = newSender(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
	}

	if cfg.RecaptchaEnabled() && cfg.RecaptchaSecret == "" {
		logger.Warn("reCAPTCHA secret key not configured, every submission will be rejected")
	}
	if cfg.FromEmail == "" || cfg.ToEmail == "" {
		logger.Warn("TO_EMAIL or FROM_EMAIL not configured, sending will fail")
	}

	m := metrics.New()
	contact := handlers.NewContactHandler(
		handlers.ContactHandlerConfig{
			RecaptchaEnabled: cfg.RecaptchaEnabled(),
			AllowedOrigin:    cfg.AllowedOrigin,
		},
		service.NewRecaptchaService(cfg.RecaptchaSecret, cfg.RecaptchaVerifyURL),
		service.NewEmailService(sender, cfg.FromEmail, cfg.ToEmail),
		m,
	)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Metrics:   m,
		Telemetry: tp,
		Contact:   contact,
	}, nil
}

func newSender(ctx context.Context, cfg *config.Config, logger *logging.Logger) (service.Sender, error) {
	switch cfg.MailDriver {
	case config.MailDriverLog:
		logger.Info("Mail driver: log (emails are printed, not sent)")
		return service.NewLogSender(logger), nil
	default:
		return service.NewSESSenderFromEnv(ctx, cfg.AWSRegion)
	}
}

// Close flushes telemetry and closes the log file
func (a *App) Close(ctx context.Context) {
	if err := a.Telemetry.Shutdown(ctx); err != nil {
		a.Logger.Warn("Failed to shut down telemetry: %v", err)
	}
	if err := a.Logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close logger: %v\n", err)
	}
}
