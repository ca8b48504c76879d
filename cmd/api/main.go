package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/youssefchaouch/dental-practice-api/internal/config"
	"github.com/youssefchaouch/dental-practice-api/internal/database"
	"github.com/youssefchaouch/dental-practice-api/internal/handlers"
	"github.com/youssefchaouch/dental-practice-api/internal/store"
	"github.com/youssefchaouch/dental-practice-api/internal/ws"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("service", "dental-practice-api")
	slog.SetDefault(logger)

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set; staff login is disabled")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	if cfg.SeedOnStart {
		if err := database.Seed(db); err != nil {
			logger.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("connected to database")

	hub := ws.NewHub(logger)
	h := handlers.NewHandler(store.New(db), hub, logger, []byte(cfg.JWTSecret))
	router := handlers.NewRouter(h, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
