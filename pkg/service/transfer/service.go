// Package transfer implements the write-side business service: loan
// transfer execution against the upstream gateway.
package transfer

import (
	"context"
	"log/slog"

	"github.com/bdelibalta/fabrick-gateway/pkg/cache"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
	"github.com/bdelibalta/fabrick-gateway/pkg/mapper"
)

type Service struct {
	gateway      fabrick.Gateway
	transactions cache.Store[[]domain.Transaction]
	logger       *slog.Logger
}

// New creates the transfer service. It shares the transaction cache with
// the account service so a successful transfer refreshes the account's
// transaction view.
func New(
	gateway fabrick.Gateway,
	transactions cache.Store[[]domain.Transaction],
	logger *slog.Logger,
) *Service {
	return &Service{
		gateway:      gateway,
		transactions: transactions,
		logger:       logger,
	}
}

// TransferLoan executes a transfer for the account. On success the cached
// transaction view for the account is overwritten wholesale, so a
// subsequent read reflects the transfer instead of stale data.
func (s *Service) TransferLoan(
	ctx context.Context,
	accountID int64,
	req domain.LoanTransferRequest,
) (*domain.LoanTransfer, error) {
	dto, err := s.gateway.ExecuteTransfer(ctx, accountID, req)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		s.logger.Error("upstream reported no transfer result", "account_id", accountID)
		return nil, domain.ErrRecordNotFound
	}
	lt, err := mapper.LoanTransfer(dto)
	if err != nil {
		return nil, err
	}

	s.transactions.Put(accountID, transferView(lt))
	s.logger.Info("transfer executed",
		"account_id", accountID,
		"money_transfer_id", lt.MoneyTransferID,
		"status", lt.Status)
	return lt, nil
}

// transferView renders the fresh transfer as the account's transaction
// view. The entry replaces whatever was cached for the account.
func transferView(lt *domain.LoanTransfer) []domain.Transaction {
	return []domain.Transaction{{
		TransactionID:  lt.MoneyTransferID,
		OperationID:    lt.MoneyTransferID,
		AccountingDate: lt.DebtorValueDate,
		ValueDate:      lt.CreditorValueDate,
		Type:           lt.Direction,
		Amount:         lt.Amount.DebtorAmount,
		Currency:       lt.Amount.DebtorCurrency,
		Description:    lt.Description,
	}}
}
