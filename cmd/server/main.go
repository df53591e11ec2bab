package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"folio.dev/internal/catalog"
	"folio.dev/internal/config"
	"folio.dev/internal/handlers"
	"folio.dev/internal/scheduler"
	"folio.dev/internal/services"
	"folio.dev/internal/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(newLogger(cfg.LogLevel, cfg.LogFormat))

	store, err := catalog.New(cfg.Projects.Projects)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}
	slog.Info("catalog loaded", "projects", store.Len())

	ctx := context.Background()

	settingsStore, err := storage.Open(ctx, cfg.Settings.Backend, cfg.Settings.DSN)
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	defer settingsStore.Close()

	slog.Info("settings store ready", "backend", cfg.Settings.Backend)

	sessions := services.NewSessionManager(store, cfg.SessionTTL)
	svc := &services.Services{
		Projects: services.NewProjectService(store),
		Sessions: sessions,
		Settings: services.NewSettingsService(settingsStore, services.DefaultSettings),
	}

	sched := scheduler.New(sessions, cfg.SessionSweep)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("start scheduler: %w", err)
	}

	srv := &http.Server{
		Addr:        cfg.ServerAddr,
		Handler:     handlers.SetupRoutes(cfg, svc),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ServerAddr)
		errCh <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sched.Stop(shutdownCtx)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
