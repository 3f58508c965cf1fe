package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	go_storefront "github.com/PayRam/go-storefront"
	"github.com/PayRam/go-storefront/internal/api"
	"github.com/PayRam/go-storefront/internal/config"
	"github.com/PayRam/go-storefront/internal/db"
	"github.com/PayRam/go-storefront/internal/logging"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig(".env", os.Args[1:])
	if err != nil {
		bootLog := logging.New("info", "console", os.Stderr)
		bootLog.Fatal().Err(err).Msg("Invalid configuration")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server stopped")
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	gormDB, err := db.Open(cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return err
	}
	if err := db.ConfigurePool(gormDB, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns); err != nil {
		return err
	}

	store, err := go_storefront.NewStorefrontService(gormDB)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewStoreRouter(store, log).SetupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("driver", cfg.DBDriver).Msg("Listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
