package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/mohd-musheer/backendChat/internal/adapters/http"
	"github.com/mohd-musheer/backendChat/internal/app"
	"github.com/mohd-musheer/backendChat/internal/config"
	"github.com/mohd-musheer/backendChat/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := storage.NewDiskStore(cfg.UploadDir, router.UploadsPrefix, cfg.Retention)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init blob store")
	}

	dir := app.NewDirectory()
	reg := app.NewRegistry()
	evr := app.NewRouter(reg, dir)
	mgr := app.NewManager(dir, reg, evr, cfg.StrictJoin)
	notifier := app.NewNotifier(reg, evr)

	r := router.SetupRouter(ctx, cfg, router.Deps{
		Directory: dir,
		Registry:  reg,
		Router:    evr,
		Manager:   mgr,
		Notifier:  notifier,
		Store:     store,
	})
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("chat relay started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
