// Package fixtures provides hand-rolled testify mocks shared by the test
// suites.
package fixtures

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
)

// MockGateway is a mock implementation of fabrick.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) GetAccountBalance(
	ctx context.Context,
	accountID int64,
) (*fabrick.AccountBalanceDTO, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabrick.AccountBalanceDTO), args.Error(1)
}

func (m *MockGateway) GetAccountTransactions(
	ctx context.Context,
	accountID int64,
	fromAccountingDate, toAccountingDate string,
) ([]fabrick.TransactionDTO, error) {
	args := m.Called(ctx, accountID, fromAccountingDate, toAccountingDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fabrick.TransactionDTO), args.Error(1)
}

func (m *MockGateway) ExecuteTransfer(
	ctx context.Context,
	accountID int64,
	req domain.LoanTransferRequest,
) (*fabrick.LoanTransferDTO, error) {
	args := m.Called(ctx, accountID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fabrick.LoanTransferDTO), args.Error(1)
}

var _ fabrick.Gateway = (*MockGateway)(nil)
