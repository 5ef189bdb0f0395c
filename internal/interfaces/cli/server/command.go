package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nexus-desk/nexus/internal/infrastructure/kvstore"
	"github.com/nexus-desk/nexus/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/nexus-desk/nexus/internal/interfaces/http"
	"github.com/nexus-desk/nexus/internal/shared/constants"
	"github.com/nexus-desk/nexus/internal/shared/logger"
	"github.com/nexus-desk/nexus/internal/shared/version"
)

var (
	env         string
	configPath  string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Nexus support desk API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending SQL migrations on startup (sql backend only)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}

	if autoMigrate {
		if cfg.Store.Backend != kvstore.BackendSQL {
			log.Warnw("--auto-migrate ignored, store backend is not sql", "backend", cfg.Store.Backend)
		}
		cfg.Store.SQL.AutoMigrate = true
	}

	log.Infow("starting server",
		"environment", env,
		"version", version.Current,
		"store_backend", cfg.Store.Backend,
		"auto_migrate", cfg.Store.SQL.AutoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debugw("route registered", "method", httpMethod, "path", absolutePath)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := httpRouter.NewContainer(startCtx, cfg, log)
	cancelStart()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer container.Shutdown()

	container.SetupRoutes()

	// WriteTimeout stays zero: chat replies are streamed for as long as the
	// provider keeps sending
	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           container.GetEngine(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Errorw("failed to start server", "error", err)
			return err
		}
	case <-quit:
	}

	return shutdown(srv, log)
}

func shutdown(srv *http.Server, log logger.Interface) error {
	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
