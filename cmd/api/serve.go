package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ASHISH26940/portfolio-api/pkg/config"
	"github.com/ASHISH26940/portfolio-api/pkg/db"
	"github.com/ASHISH26940/portfolio-api/pkg/db/queries"
	"github.com/ASHISH26940/portfolio-api/pkg/handlers"
	"github.com/ASHISH26940/portfolio-api/pkg/server"
	"github.com/ASHISH26940/portfolio-api/pkg/services"
	"github.com/ASHISH26940/portfolio-api/pkg/uploads"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info("Starting Portfolio API...")

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close(conn)

	if err := db.Migrate(ctx, conn); err != nil {
		return err
	}

	handler, auth, err := buildHandler(ctx, cfg, conn)
	if err != nil {
		return err
	}
	router := server.NewRouter(cfg, handler, auth)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited gracefully.")
	return nil
}

// buildHandler wires the services behind the HTTP layer and bootstraps the admin account.
func buildHandler(ctx context.Context, cfg *config.Config, conn *sqlx.DB) (*handlers.Handler, *services.AuthService, error) {
	q := queries.New(conn)
	tokens := services.NewTokenService(cfg.JwtSecret, cfg.JwtExpiresIn)
	auth := services.NewAuthService(q, tokens)

	if err := auth.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return nil, nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	images, err := uploads.NewImageStore(cfg.UploadDir, cfg.MaxUploadSize)
	if err != nil {
		return nil, nil, err
	}

	var notifier services.Notifier = services.NopNotifier{}
	if cfg.MailEnabled() {
		notifier = services.NewMailer(services.MailerConfig{
			Host:     cfg.EmailHost,
			Port:     cfg.EmailPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
		})
		log.Infof("Contact notifications enabled via %s:%d", cfg.EmailHost, cfg.EmailPort)
	} else {
		log.Info("EMAIL_USER/EMAIL_PASS not set, contact notifications disabled.")
	}

	cache := services.NewContentCache(cfg.CacheTTL)
	return handlers.NewHandler(q, auth, images, notifier, cache), auth, nil
}
