package account

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	infracache "github.com/bdelibalta/fabrick-gateway/infra/cache"
	"github.com/bdelibalta/fabrick-gateway/internal/fixtures"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
)

func newTestService(t *testing.T) (*Service, *fixtures.MockGateway, *fixtures.MockTransactionRepository) {
	t.Helper()
	gateway := new(fixtures.MockGateway)
	store := new(fixtures.MockTransactionRepository)
	svc := New(
		gateway,
		store,
		infracache.NewMemory[*domain.AccountBalance](16, time.Minute),
		infracache.NewMemory[[]domain.Transaction](16, time.Minute),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	t.Cleanup(func() {
		gateway.AssertExpectations(t)
		store.AssertExpectations(t)
	})
	return svc, gateway, store
}

func TestGetAccountBalance(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountBalance", mock.Anything, int64(1234567890)).
		Return(&fabrick.AccountBalanceDTO{
			AccountID:        "1234567890",
			Iban:             "IT60X0542811101000000123456",
			AbiCode:          "5428",
			CabCode:          "11101",
			InternationalCin: "60",
			Account:          "123456",
			ActivatedDate:    "2016-12-14",
			Currency:         "EUR",
		}, nil).Once()

	got, err := svc.GetAccountBalance(context.Background(), 1234567890)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), got.AccountID)
	assert.Equal(t, "EUR", got.Currency)
}

func TestGetAccountBalance_CachedAfterFirstRead(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountBalance", mock.Anything, int64(1)).
		Return(&fabrick.AccountBalanceDTO{
			AccountID: "1", AbiCode: "1", CabCode: "1",
			InternationalCin: "1", Account: "1", Currency: "EUR",
		}, nil).Once()

	first, err := svc.GetAccountBalance(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.GetAccountBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	gateway.AssertNumberOfCalls(t, "GetAccountBalance", 1)
}

func TestGetAccountBalance_NullPayloadIsRecordNotFound(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountBalance", mock.Anything, int64(1)).
		Return(nil, nil).Once()

	_, err := svc.GetAccountBalance(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestGetAccountBalance_UpstreamErrorNotCached(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountBalance", mock.Anything, int64(1)).
		Return(nil, &domain.UpstreamError{StatusCode: 500, Message: "boom"}).Once()
	gateway.On("GetAccountBalance", mock.Anything, int64(1)).
		Return(&fabrick.AccountBalanceDTO{
			AccountID: "1", AbiCode: "1", CabCode: "1",
			InternationalCin: "1", Account: "1", Currency: "EUR",
		}, nil).Once()

	_, err := svc.GetAccountBalance(context.Background(), 1)
	require.Error(t, err)

	got, err := svc.GetAccountBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.AccountID)
}

func transactionDTOs() []fabrick.TransactionDTO {
	return []fabrick.TransactionDTO{
		{
			TransactionID: "1", OperationID: "10",
			AccountingDate: "2019-11-28", ValueDate: "2019-11-30",
			Amount: -50, Currency: "EUR", Description: "POS",
		},
		{
			TransactionID: "2", OperationID: "20",
			AccountingDate: "2019-11-29", ValueDate: "2019-12-01",
			Amount: 854.5, Currency: "EUR", Description: "PD VISA",
		},
	}
}

func TestGetAccountTransactions_RankedAndMirrored(t *testing.T) {
	svc, gateway, store := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(42), "2019-01-01", "2019-12-01").
		Return(transactionDTOs(), nil).Once()
	// id 1 already mirrored, id 2 is new
	store.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
	store.On("Exists", mock.Anything, int64(2)).Return(false, nil).Once()
	store.On("Save", mock.Anything, mock.MatchedBy(func(tx domain.Transaction) bool {
		return tx.TransactionID == 2
	})).Return(nil).Once()

	got, err := svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// newest first
	assert.Equal(t, int64(2), got[0].TransactionID)
	assert.Equal(t, int64(1), got[1].TransactionID)
}

func TestGetAccountTransactions_SecondReadServedFromCache(t *testing.T) {
	svc, gateway, store := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(42), "2019-01-01", "2019-12-01").
		Return(transactionDTOs(), nil).Once()
	store.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	_, err = svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	gateway.AssertNumberOfCalls(t, "GetAccountTransactions", 1)
}

func TestGetAccountTransactions_StoreFailureDoesNotFailRead(t *testing.T) {
	svc, gateway, store := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(42), "2019-01-01", "2019-12-01").
		Return(transactionDTOs(), nil).Once()
	store.On("Exists", mock.Anything, int64(1)).Return(false, assert.AnError).Once()
	store.On("Exists", mock.Anything, int64(2)).Return(false, nil).Once()
	store.On("Save", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	got, err := svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetAccountTransactions_NullPayloadIsRecordNotFound(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(42), "2019-01-01", "2019-12-01").
		Return(nil, nil).Once()

	_, err := svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestGetAccountTransactions_EmptyListIsValid(t *testing.T) {
	svc, gateway, _ := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(42), "2019-01-01", "2019-12-01").
		Return([]fabrick.TransactionDTO{}, nil).Once()

	got, err := svc.GetAccountTransactions(context.Background(), 42, "2019-01-01", "2019-12-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetAccountTransactions_CapsAtThirty(t *testing.T) {
	dtos := make([]fabrick.TransactionDTO, 0, 40)
	for i := 1; i <= 40; i++ {
		day := "2019-11-01"
		if i > 20 {
			day = "2019-11-02"
		}
		dtos = append(dtos, fabrick.TransactionDTO{
			TransactionID:  strconv.Itoa(i),
			OperationID:    strconv.Itoa(1000 + i),
			AccountingDate: day,
			ValueDate:      day,
			Currency:       "EUR",
		})
	}

	svc, gateway, store := newTestService(t)
	gateway.On("GetAccountTransactions", mock.Anything, int64(7), "2019-11-01", "2019-11-30").
		Return(dtos, nil).Once()
	store.On("Exists", mock.Anything, mock.Anything).Return(true, nil)

	got, err := svc.GetAccountTransactions(context.Background(), 7, "2019-11-01", "2019-11-30")
	require.NoError(t, err)
	require.Len(t, got, 30)
	assert.Equal(t, time.Date(2019, 11, 2, 0, 0, 0, 0, time.UTC), got[0].AccountingDate)
}

func TestDeleteTransaction(t *testing.T) {
	svc, _, store := newTestService(t)
	store.On("DeleteByTransactionID", mock.Anything, int64(99)).Return(nil).Once()
	require.NoError(t, svc.DeleteTransaction(context.Background(), 99))
}
