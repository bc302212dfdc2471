// Package account implements the read-side business service: cached balance
// and transaction-history lookups against the upstream gateway, with
// best-effort mirroring of newly seen transactions into the store.
package account

import (
	"context"
	"log/slog"

	"github.com/bdelibalta/fabrick-gateway/pkg/cache"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
	"github.com/bdelibalta/fabrick-gateway/pkg/mapper"
	transactionrepo "github.com/bdelibalta/fabrick-gateway/pkg/repository/transaction"
)

type Service struct {
	gateway      fabrick.Gateway
	store        transactionrepo.Repository
	balances     cache.Store[*domain.AccountBalance]
	transactions cache.Store[[]domain.Transaction]
	logger       *slog.Logger
}

// New creates the account service.
func New(
	gateway fabrick.Gateway,
	store transactionrepo.Repository,
	balances cache.Store[*domain.AccountBalance],
	transactions cache.Store[[]domain.Transaction],
	logger *slog.Logger,
) *Service {
	return &Service{
		gateway:      gateway,
		store:        store,
		balances:     balances,
		transactions: transactions,
		logger:       logger,
	}
}

// GetAccountBalance returns the account balance, fetching from the upstream
// at most once per account while the cache entry is valid.
func (s *Service) GetAccountBalance(
	ctx context.Context,
	accountID int64,
) (*domain.AccountBalance, error) {
	return s.balances.GetOrCompute(accountID, func() (*domain.AccountBalance, error) {
		dto, err := s.gateway.GetAccountBalance(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if dto == nil {
			s.logger.Error("upstream reported no balance", "account_id", accountID)
			return nil, domain.ErrRecordNotFound
		}
		return mapper.AccountBalance(dto)
	})
}

// GetAccountTransactions returns the 30 most recent transactions of the
// account within the given accounting-date window, newest first. The result
// is cached per account id: the first fetched window is served to
// subsequent reads until the entry expires or a transfer overwrites it.
func (s *Service) GetAccountTransactions(
	ctx context.Context,
	accountID int64,
	fromAccountingDate, toAccountingDate string,
) ([]domain.Transaction, error) {
	return s.transactions.GetOrCompute(accountID, func() ([]domain.Transaction, error) {
		dtos, err := s.gateway.GetAccountTransactions(
			ctx, accountID, fromAccountingDate, toAccountingDate)
		if err != nil {
			return nil, err
		}
		if dtos == nil {
			s.logger.Error("upstream reported no transaction list", "account_id", accountID)
			return nil, domain.ErrRecordNotFound
		}
		txs, err := mapper.Transactions(dtos)
		if err != nil {
			return nil, err
		}
		s.mirror(ctx, txs)
		return rankTransactions(txs), nil
	})
}

// DeleteTransaction removes a mirrored transaction by its upstream id.
// Housekeeping only; the mirror is otherwise append-only.
func (s *Service) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return s.store.DeleteByTransactionID(ctx, transactionID)
}

// mirror saves transactions not yet present in the store. The mirror is
// best-effort: store failures are logged and do not fail the read.
func (s *Service) mirror(ctx context.Context, txs []domain.Transaction) {
	for _, tx := range txs {
		exists, err := s.store.Exists(ctx, tx.TransactionID)
		if err != nil {
			s.logger.Warn("transaction existence check failed",
				"transaction_id", tx.TransactionID, "error", err)
			continue
		}
		if exists {
			continue
		}
		if err := s.store.Save(ctx, tx); err != nil {
			s.logger.Warn("transaction mirror save failed",
				"transaction_id", tx.TransactionID, "error", err)
		}
	}
}
