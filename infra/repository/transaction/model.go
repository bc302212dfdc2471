package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a mirrored transaction row.
type Transaction struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID  int64     `gorm:"column:transaction_id;uniqueIndex;not null"`
	OperationID    int64     `gorm:"column:operation_id;uniqueIndex;not null"`
	AccountingDate time.Time `gorm:"column:accounting_date;type:date;not null"`
	ValueDate      time.Time `gorm:"column:value_date;type:date;not null"`
	Type           string    `gorm:"not null"`
	Amount         float64   `gorm:"type:decimal(10,2);not null"`
	Currency       string    `gorm:"type:varchar(3);not null"`
	Description    string    `gorm:"not null"`
	CreatedAt      time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}
