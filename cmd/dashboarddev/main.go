package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bazaan/dashboarddev/internal/app"
	"github.com/bazaan/dashboarddev/internal/config"
	"github.com/bazaan/dashboarddev/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if err = logger.Initialize(); err != nil {
		log.Fatalf("error starting logger: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Log.Fatal("error creating app", logger.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: a.Router(),
	}

	go startServer(server)

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	logger.Log.Info("stopping server")
	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("error shutting down server", logger.Error(err))
	}
	logger.Log.Info("server stopped")

	logger.Log.Info("closing database connection")
	if err = a.DB.Close(); err != nil {
		logger.Log.Error("error closing database connection", logger.Error(err))
	}
	logger.Log.Info("database connection closed")

	logger.Log.Info("shutdown complete")
}

func startServer(server *http.Server) {
	logger.Log.Info("starting server", logger.String("address", server.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("server error", logger.Error(err))
	}
}
