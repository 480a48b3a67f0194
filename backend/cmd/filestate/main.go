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

	"github.com/itchan-dev/filestate/backend/internal/router"
	"github.com/itchan-dev/filestate/backend/internal/setup"
	"github.com/itchan-dev/filestate/shared/config"
	"github.com/itchan-dev/filestate/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps := setup.SetupDependencies(cfg)

	server := &http.Server{
		Addr:         cfg.Public.HttpAddr,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.ReadTimeout,
		WriteTimeout: cfg.Public.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("server started", "addr", cfg.Public.HttpAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("server stopped", "files_cached", len(deps.Store.State().Files))
}
