// Package initializer constructs the dependency graph of the gateway from
// its loaded configuration.
package initializer

import (
	"fmt"

	"github.com/bdelibalta/fabrick-gateway/infra"
	infracache "github.com/bdelibalta/fabrick-gateway/infra/cache"
	infrafabrick "github.com/bdelibalta/fabrick-gateway/infra/fabrick"
	infratransaction "github.com/bdelibalta/fabrick-gateway/infra/repository/transaction"
	"github.com/bdelibalta/fabrick-gateway/pkg/app"
	"github.com/bdelibalta/fabrick-gateway/pkg/config"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

// InitializeDependencies builds all application dependencies: logger,
// database-backed transaction mirror, upstream client and caches.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&infratransaction.Transaction{}); err != nil {
		return nil, fmt.Errorf("failed to migrate transaction mirror: %w", err)
	}
	deps.TransactionStore = infratransaction.New(db)

	deps.Gateway = infrafabrick.New(cfg.Fabrick, logger)

	deps.BalanceCache = infracache.NewMemory[*domain.AccountBalance](
		cfg.Cache.Size, cfg.Cache.TTL)
	deps.TransactionCache = infracache.NewMemory[[]domain.Transaction](
		cfg.Cache.Size, cfg.Cache.TTL)

	logger.Info("dependencies initialized",
		"fabrick_base_url", cfg.Fabrick.BaseURL,
		"cache_size", cfg.Cache.Size,
		"cache_ttl", cfg.Cache.TTL,
	)
	return deps, nil
}
