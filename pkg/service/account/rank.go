package account

import (
	"sort"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

// maxTransactions caps the transaction view returned to clients.
const maxTransactions = 30

// rankTransactions orders transactions most recent first, by accounting
// date then value date descending, and truncates to maxTransactions. The
// transaction id breaks remaining ties so the order is deterministic for
// duplicate date keys. The input slice is not modified.
func rankTransactions(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	copy(out, txs)

	sort.Slice(out, func(i, j int) bool {
		if !out[i].AccountingDate.Equal(out[j].AccountingDate) {
			return out[i].AccountingDate.After(out[j].AccountingDate)
		}
		if !out[i].ValueDate.Equal(out[j].ValueDate) {
			return out[i].ValueDate.After(out[j].ValueDate)
		}
		return out[i].TransactionID > out[j].TransactionID
	})

	if len(out) > maxTransactions {
		out = out[:maxTransactions]
	}
	return out
}
