package domain

import "time"

// Account identifies a counterparty account by its code (IBAN or local).
type Account struct {
	AccountCode string `json:"accountCode"`
}

type Address struct {
	Address     string `json:"address"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type Creditor struct {
	Name    string   `json:"name"`
	Account Account  `json:"account"`
	Address *Address `json:"address,omitempty"`
}

type Debtor struct {
	Name    string  `json:"name"`
	Account Account `json:"account"`
}

// Amount carries both legs of a transfer together with the applied
// exchange rate.
type Amount struct {
	DebtorAmount         float64   `json:"debtorAmount"`
	DebtorCurrency       string    `json:"debtorCurrency"`
	CreditorAmount       float64   `json:"creditorAmount"`
	CreditorCurrency     string    `json:"creditorCurrency"`
	CreditorCurrencyDate time.Time `json:"creditorCurrencyDate"`
	ExchangeRate         float64   `json:"exchangeRate"`
}

type Fee struct {
	FeeCode     string  `json:"feeCode"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// LoanTransfer is the immutable snapshot produced by one transfer
// execution. It is not persisted beyond the cache entry for its account.
type LoanTransfer struct {
	MoneyTransferID   int64     `json:"moneyTransferId"`
	Status            string    `json:"status"`
	Direction         string    `json:"direction"`
	Creditor          Creditor  `json:"creditor"`
	Address           *Address  `json:"address,omitempty"`
	Debtor            Debtor    `json:"debtor"`
	Cro               int64     `json:"cro"`
	Uri               string    `json:"uri"`
	Trn               string    `json:"trn"`
	Description       string    `json:"description"`
	CreatedDatetime   string    `json:"createdDateTime"`
	AccountedDatetime string    `json:"accountedDateTime"`
	DebtorValueDate   time.Time `json:"debtorValueDate"`
	CreditorValueDate time.Time `json:"creditorValueDate"`
	Amount            Amount    `json:"amount"`
	IsUrgent          bool      `json:"isUrgent"`
	IsInstant         bool      `json:"isInstant"`
	FeeType           string    `json:"feeType"`
	FeeAccountID      int64     `json:"feeAccountId"`
	Fees              []Fee     `json:"fees"`
	HasTaxRelief      bool      `json:"hasTaxRelief"`
}

// LoanTransferRequest is the client-facing request body for executing a
// transfer, forwarded to the upstream as-is.
type LoanTransferRequest struct {
	Creditor      Creditor `json:"creditor" validate:"required"`
	ExecutionDate string   `json:"executionDate" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Amount        float64  `json:"amount" validate:"required,gt=0"`
	Currency      string   `json:"currency" validate:"required,len=3"`
}
