package fixtures

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	transactionrepo "github.com/bdelibalta/fabrick-gateway/pkg/repository/transaction"
)

// MockTransactionRepository is a mock implementation of the transaction
// store port.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Exists(ctx context.Context, transactionID int64) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteByTransactionID(
	ctx context.Context,
	transactionID int64,
) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ transactionrepo.Repository = (*MockTransactionRepository)(nil)
