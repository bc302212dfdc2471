package fabrick

// Wire-level payload shapes as the upstream transmits them. Numeric
// identifiers arrive as strings; the result mapper converts them into the
// strict domain representation.

type AccountBalanceDTO struct {
	AccountID        string `json:"accountId"`
	Iban             string `json:"iban"`
	AbiCode          string `json:"abiCode"`
	CabCode          string `json:"cabCode"`
	CountryCode      string `json:"countryCode"`
	InternationalCin string `json:"internationalCin"`
	NationalCin      string `json:"nationalCin"`
	Account          string `json:"account"`
	Alias            string `json:"alias"`
	ProductName      string `json:"productName"`
	HolderName       string `json:"holderName"`
	ActivatedDate    string `json:"activatedDate"`
	Currency         string `json:"currency"`
}

type TransactionDTO struct {
	TransactionID  string  `json:"transactionId"`
	OperationID    string  `json:"operationId"`
	AccountingDate string  `json:"accountingDate"`
	ValueDate      string  `json:"valueDate"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Description    string  `json:"description"`
}

type AccountDTO struct {
	AccountCode string `json:"accountCode"`
}

type AddressDTO struct {
	Address     string `json:"address"`
	City        string `json:"city"`
	CountryCode string `json:"countryCode"`
}

type CreditorDTO struct {
	Name    string      `json:"name"`
	Account AccountDTO  `json:"account"`
	Address *AddressDTO `json:"address,omitempty"`
}

type DebtorDTO struct {
	Name    string     `json:"name"`
	Account AccountDTO `json:"account"`
}

type AmountDTO struct {
	DebtorAmount         float64 `json:"debtorAmount"`
	DebtorCurrency       string  `json:"debtorCurrency"`
	CreditorAmount       float64 `json:"creditorAmount"`
	CreditorCurrency     string  `json:"creditorCurrency"`
	CreditorCurrencyDate string  `json:"creditorCurrencyDate"`
	ExchangeRate         float64 `json:"exchangeRate"`
}

type FeeDTO struct {
	FeeCode     string  `json:"feeCode"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

type LoanTransferDTO struct {
	MoneyTransferID   string      `json:"moneyTransferId"`
	Status            string      `json:"status"`
	Direction         string      `json:"direction"`
	Creditor          CreditorDTO `json:"creditor"`
	Address           *AddressDTO `json:"address,omitempty"`
	Debtor            DebtorDTO   `json:"debtor"`
	Cro               string      `json:"cro"`
	Uri               string      `json:"uri"`
	Trn               string      `json:"trn"`
	Description       string      `json:"description"`
	CreatedDatetime   string      `json:"createdDateTime"`
	AccountedDatetime string      `json:"accountedDateTime"`
	DebtorValueDate   string      `json:"debtorValueDate"`
	CreditorValueDate string      `json:"creditorValueDate"`
	Amount            AmountDTO   `json:"amount"`
	IsUrgent          bool        `json:"isUrgent"`
	IsInstant         bool        `json:"isInstant"`
	FeeType           string      `json:"feeType"`
	FeeAccountID      string      `json:"feeAccountId"`
	Fees              []FeeDTO    `json:"fees"`
	HasTaxRelief      bool        `json:"hasTaxRelief"`
}
