package domain

import "time"

// Transaction is a single account movement. TransactionID and OperationID
// are each unique identifiers of the same movement.
type Transaction struct {
	TransactionID  int64     `json:"transactionId"`
	OperationID    int64     `json:"operationId"`
	AccountingDate time.Time `json:"accountingDate"`
	ValueDate      time.Time `json:"valueDate"`
	Type           string    `json:"type"`
	Amount         float64   `json:"amount"`
	Currency       string    `json:"currency"`
	Description    string    `json:"description"`
}
