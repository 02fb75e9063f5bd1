package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/garageflow/garageflow/internal/auth"
	"github.com/garageflow/garageflow/internal/config"
	"github.com/garageflow/garageflow/internal/handlers"
	"github.com/garageflow/garageflow/internal/store"
)

func main() {
	cfg := config.Load()

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	log.WithField("dataDir", cfg.DataDir).Info("starting garageflow server")

	// A failed load keeps serving: the API answers 503 with the load
	// error instead of pretending the dataset is empty.
	s, err := store.Open(cfg.DataDir)
	if err != nil {
		if s == nil {
			log.WithError(err).Fatal("failed to open data directory")
		}
		log.WithError(err).Error("store opened in degraded state")
	}

	autosaver := s.StartAutosave(cfg.AutosaveInterval)

	authService := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	router := handlers.NewRouter(cfg, s, authService)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server failed")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("http shutdown failed")
	}

	autosaver.Stop()
	if err := s.Close(); err != nil {
		log.WithError(err).Error("final flush failed")
	}
	log.Info("server stopped")
}
