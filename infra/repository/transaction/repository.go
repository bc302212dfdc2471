// Package transaction implements the transaction mirror store on gorm.
package transaction

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	repo "github.com/bdelibalta/fabrick-gateway/pkg/repository/transaction"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction store backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Exists implements transaction.Repository.
func (r *repository) Exists(ctx context.Context, transactionID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save implements transaction.Repository.
func (r *repository) Save(ctx context.Context, tx domain.Transaction) error {
	row := Transaction{
		ID:             uuid.New(),
		TransactionID:  tx.TransactionID,
		OperationID:    tx.OperationID,
		AccountingDate: tx.AccountingDate,
		ValueDate:      tx.ValueDate,
		Type:           tx.Type,
		Amount:         tx.Amount,
		Currency:       tx.Currency,
		Description:    tx.Description,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// DeleteByTransactionID implements transaction.Repository.
func (r *repository) DeleteByTransactionID(ctx context.Context, transactionID int64) error {
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Delete(&Transaction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
