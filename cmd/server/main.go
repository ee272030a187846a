package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/cache"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/logger"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/metrics"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/provider"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/server"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/service/deck"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/service/explore"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/service/profile"
)

func main() {
	if err := run(); err != nil {
		logger.L().Error("server exited", "err", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run() error {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		return fmt.Errorf("init db: %w", err)
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	appCtx := app.New(cfg, database, redisCache, log)
	if cfg.Provider.Kind == "mock" {
		mock, err := provider.NewMock(nil, cfg.Provider.MockDelay, cfg.Swipe.PageSize)
		if err != nil {
			return fmt.Errorf("load mock profiles: %w", err)
		}
		appCtx.WithProviders(provider.MockFactory(mock))
	}
	log.Info("candidate provider", "kind", cfg.Provider.Kind)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	metricsSrv := &http.Server{
		Addr:              cfg.Metrics.Addr,
		Handler:           metrics.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("serving metrics", "addr", cfg.Metrics.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
		log.Info("server stopped")
	}()

	registrars := []server.Registrar{
		deck.NewRegistrar(appCtx),
		explore.NewRegistrar(appCtx),
		profile.NewRegistrar(appCtx),
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(ctx, cfg, registrars...); err != nil {
		return fmt.Errorf("grpc server: %w", err)
	}
	return nil
}
