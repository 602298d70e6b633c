package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/coolfrog-dev/coolfrog/internal/config"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	"github.com/coolfrog-dev/coolfrog/internal/router"
	"github.com/coolfrog-dev/coolfrog/internal/setup"
	"github.com/coolfrog-dev/coolfrog/internal/storage/pg"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real deployments pass the environment directly
	_ = godotenv.Load()

	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	if err := pg.MigrateUp(cfg.Private.Pg); err != nil {
		logger.Log.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		logger.Log.Error("failed to setup dependencies", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.Public.HttpAddr,
		Handler:      router.New(deps.Router),
		ReadTimeout:  cfg.Public.ReadTimeout,
		WriteTimeout: cfg.Public.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Log.Info("shutting down")
	case err := <-serverErr:
		logger.Log.Error("server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
	if err := deps.Cleanup(shutdownCtx); err != nil {
		logger.Log.Error("cleanup failed", "error", err)
	}
}
