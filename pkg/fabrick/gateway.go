package fabrick

import (
	"context"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

// Gateway is the single external-call surface towards the upstream. Each
// invocation emits exactly one outbound HTTP call; there are no retries.
// A nil result with a nil error means the upstream reported no value.
type Gateway interface {
	GetAccountBalance(ctx context.Context, accountID int64) (*AccountBalanceDTO, error)
	GetAccountTransactions(
		ctx context.Context,
		accountID int64,
		fromAccountingDate, toAccountingDate string,
	) ([]TransactionDTO, error)
	ExecuteTransfer(
		ctx context.Context,
		accountID int64,
		req domain.LoanTransferRequest,
	) (*LoanTransferDTO, error)
}
