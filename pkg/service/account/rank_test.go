package account

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

func day(d int) time.Time {
	return time.Date(2019, 11, d, 0, 0, 0, 0, time.UTC)
}

func TestRankTransactions_NewestFirstCapped(t *testing.T) {
	// 40 transactions spanning two accounting dates: ids 1-20 on the older
	// day, ids 21-40 on the newer one.
	txs := make([]domain.Transaction, 0, 40)
	for i := 1; i <= 20; i++ {
		txs = append(txs, domain.Transaction{
			TransactionID:  int64(i),
			AccountingDate: day(1),
			ValueDate:      day(1),
		})
	}
	for i := 21; i <= 40; i++ {
		txs = append(txs, domain.Transaction{
			TransactionID:  int64(i),
			AccountingDate: day(2),
			ValueDate:      day(2),
		})
	}

	got := rankTransactions(txs)
	require.Len(t, got, 30)

	// All 20 newer-day transactions come first.
	for i := 0; i < 20; i++ {
		assert.Equal(t, day(2), got[i].AccountingDate)
	}
	for i := 20; i < 30; i++ {
		assert.Equal(t, day(1), got[i].AccountingDate)
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		assert.False(t, prev.AccountingDate.Before(cur.AccountingDate))
	}
}

func TestRankTransactions_ValueDateBreaksTies(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: 1, AccountingDate: day(5), ValueDate: day(5)},
		{TransactionID: 2, AccountingDate: day(5), ValueDate: day(8)},
		{TransactionID: 3, AccountingDate: day(5), ValueDate: day(6)},
	}

	got := rankTransactions(txs)
	require.Len(t, got, 3)
	assert.Equal(t, int64(2), got[0].TransactionID)
	assert.Equal(t, int64(3), got[1].TransactionID)
	assert.Equal(t, int64(1), got[2].TransactionID)
}

func TestRankTransactions_DeterministicForDuplicateKeys(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: 10, AccountingDate: day(5), ValueDate: day(5)},
		{TransactionID: 30, AccountingDate: day(5), ValueDate: day(5)},
		{TransactionID: 20, AccountingDate: day(5), ValueDate: day(5)},
	}

	first := rankTransactions(txs)
	second := rankTransactions([]domain.Transaction{txs[2], txs[0], txs[1]})
	assert.Equal(t, first, second)
}

func TestRankTransactions_Idempotent(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: 1, AccountingDate: day(3), ValueDate: day(3)},
		{TransactionID: 2, AccountingDate: day(9), ValueDate: day(9)},
		{TransactionID: 3, AccountingDate: day(6), ValueDate: day(6)},
	}

	once := rankTransactions(txs)
	twice := rankTransactions(once)
	assert.Equal(t, once, twice)
}

func TestRankTransactions_Empty(t *testing.T) {
	got := rankTransactions(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRankTransactions_DoesNotModifyInput(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: 1, AccountingDate: day(1)},
		{TransactionID: 2, AccountingDate: day(2)},
	}
	rankTransactions(txs)
	assert.Equal(t, int64(1), txs[0].TransactionID)
}
