// Package app wires the configured dependencies into the business services.
package app

import (
	"log/slog"

	"github.com/bdelibalta/fabrick-gateway/pkg/cache"
	"github.com/bdelibalta/fabrick-gateway/pkg/config"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
	transactionrepo "github.com/bdelibalta/fabrick-gateway/pkg/repository/transaction"
	"github.com/bdelibalta/fabrick-gateway/pkg/service/account"
	"github.com/bdelibalta/fabrick-gateway/pkg/service/transfer"
)

// Deps contains the constructed infrastructure dependencies.
type Deps struct {
	Gateway          fabrick.Gateway
	TransactionStore transactionrepo.Repository
	BalanceCache     cache.Store[*domain.AccountBalance]
	TransactionCache cache.Store[[]domain.Transaction]
	Logger           *slog.Logger
}

type App struct {
	Deps            *Deps
	Config          *config.App
	AccountService  *account.Service
	TransferService *transfer.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		AccountService: account.New(
			deps.Gateway,
			deps.TransactionStore,
			deps.BalanceCache,
			deps.TransactionCache,
			deps.Logger,
		),
		TransferService: transfer.New(
			deps.Gateway,
			deps.TransactionCache,
			deps.Logger,
		),
	}
}
