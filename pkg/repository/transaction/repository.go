// Package transaction declares the store port for the best-effort mirror of
// transactions already seen from the upstream.
package transaction

import (
	"context"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
)

// Repository is an append-only store keyed by transaction id. A transaction
// already present is never re-saved; rows are never updated. The only
// removal path is the explicit housekeeping delete.
type Repository interface {
	Exists(ctx context.Context, transactionID int64) (bool, error)
	Save(ctx context.Context, tx domain.Transaction) error
	DeleteByTransactionID(ctx context.Context, transactionID int64) error
}
