package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/cache"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/provider"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Providers  provider.Factory
}

// New creates a new AppContext. Providers defaults to the database-backed
// store; replace it to serve canned profiles.
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger) *AppContext {
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Providers:  provider.StoreFactory(db, cfg.Swipe.PageSize, logger),
	}
}

// WithProviders swaps the candidate source.
func (a *AppContext) WithProviders(f provider.Factory) *AppContext {
	a.Providers = f
	return a
}
