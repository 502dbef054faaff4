// Package main is the entry point for the Ethiopian calendar API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/api"
	"github.com/zapponejosh/bahire-hasab/internal/config"
	"github.com/zapponejosh/bahire-hasab/internal/database"
	"github.com/zapponejosh/bahire-hasab/internal/holiday"
	"github.com/zapponejosh/bahire-hasab/internal/i18n"
	"github.com/zapponejosh/bahire-hasab/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg)

	log.Info("starting calendar API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.String("default_language", cfg.DefaultLanguage),
	)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, store, closeStore, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	handlers := api.NewHandlers(almanac.New(catalog, i18n.Default()), store, cfg, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("calendar API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// openCatalog returns the holiday catalog to serve. With DATABASE_PATH set
// the catalog is loaded from SQLite, seeding it from the embedded catalog
// on first start; otherwise the embedded catalog is used directly.
func openCatalog(ctx context.Context, cfg *config.Config, log *slog.Logger) (holiday.Catalog, api.Store, func(), error) {
	if !cfg.UsesDatabase() {
		log.Info("serving embedded holiday catalog", slog.Int("holidays", holiday.Default().Len()))
		return holiday.Default(), nil, func() {}, nil
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}

	if _, err := db.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("migrate: %w", err)
	}

	catalog, err := db.LoadCatalog(ctx)
	if database.IsNotFound(err) {
		log.Info("holiday catalog empty, seeding from embedded catalog")
		if err = seed(ctx, db); err == nil {
			catalog, err = db.LoadCatalog(ctx)
		}
	}
	if err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("load holiday catalog: %w", err)
	}

	log.Info("serving holiday catalog from database",
		slog.String("path", cfg.DatabasePath),
		slog.Int("holidays", catalog.Len()),
	)
	return catalog, db, closeDB, nil
}

func seed(ctx context.Context, db *database.DB) error {
	start := time.Now()
	n, err := db.Seed(ctx, holiday.Default().All())

	entry := &database.ImportLogEntry{Source: "embedded", Holidays: n, Success: err == nil}
	ms := time.Since(start).Milliseconds()
	entry.DurationMs = &ms
	if err != nil {
		entry.ErrorMessage = database.StringPtr(err.Error())
	}
	if logErr := db.LogImport(ctx, entry); logErr != nil {
		return errors.Join(err, logErr)
	}
	return err
}
