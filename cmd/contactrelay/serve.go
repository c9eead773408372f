package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/osa911/contactrelay/internal/api/handlers"
	"github.com/osa911/contactrelay/internal/app"
	"github.com/osa911/contactrelay/internal/server"
	"github.com/osa911/contactrelay/internal/server/routes"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the contact relay as a local HTTP server",
	Long: `Run the contact relay as a local HTTP server.

Configuration is read from the environment and from .env.<ENV> or .env files.
Set MAIL_DRIVER=log to print emails instead of sending them through SES.

Example:
  contactrelay serve
  contactrelay serve --port 3001`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.Close(shutdownCtx)
		}()

		if port, _ := cmd.Flags().GetString("port"); port != "" {
			a.Config.Port = port
		}

		a.Logger.Info("Starting contact relay in %s mode", a.Config.Environment)

		srv := server.NewServer(a.Config, &routes.Handlers{
			Contact: a.Contact,
			Health:  handlers.NewHealthHandler(),
			Metrics: a.Metrics.Handler(),
		})
		srv.Init()

		if err := srv.Start(ctx); err != nil {
			a.Logger.Error("Server stopped: %v", err)
			return err
		}
		return nil
	},
}
