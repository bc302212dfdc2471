// Package mapper converts the upstream's loosely-typed payload shapes into
// the strict domain representation. All conversions are pure; a field that
// should be numeric but is not fails with domain.ErrInvalidPayload, never
// with a silent default.
package mapper

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
)

const dateLayout = "2006-01-02"

func parseInt64(field, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %q is not numeric", domain.ErrInvalidPayload, field, value)
	}
	return n, nil
}

func parseInt32(field, value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: field %s: %q is not numeric", domain.ErrInvalidPayload, field, value)
	}
	return int32(n), nil
}

// parseDate parses an ISO date. An empty value maps to the zero time; the
// upstream omits some date fields.
func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %s: %q is not a date", domain.ErrInvalidPayload, field, value)
	}
	return t, nil
}

// AccountBalance maps the balance payload into its strict form.
func AccountBalance(dto *fabrick.AccountBalanceDTO) (*domain.AccountBalance, error) {
	accountID, err := parseInt64("accountId", dto.AccountID)
	if err != nil {
		return nil, err
	}
	abiCode, err := parseInt64("abiCode", dto.AbiCode)
	if err != nil {
		return nil, err
	}
	cabCode, err := parseInt64("cabCode", dto.CabCode)
	if err != nil {
		return nil, err
	}
	cin, err := parseInt32("internationalCin", dto.InternationalCin)
	if err != nil {
		return nil, err
	}
	accountNumber, err := parseInt64("account", dto.Account)
	if err != nil {
		return nil, err
	}
	activated, err := parseDate("activatedDate", dto.ActivatedDate)
	if err != nil {
		return nil, err
	}
	return &domain.AccountBalance{
		AccountID:        accountID,
		Iban:             dto.Iban,
		AbiCode:          abiCode,
		CabCode:          cabCode,
		CountryCode:      dto.CountryCode,
		InternationalCin: cin,
		NationalCin:      dto.NationalCin,
		AccountNumber:    accountNumber,
		Alias:            dto.Alias,
		ProductName:      dto.ProductName,
		HolderName:       dto.HolderName,
		ActivatedDate:    activated,
		Currency:         dto.Currency,
	}, nil
}

// Transaction maps a single transaction payload entry.
func Transaction(dto fabrick.TransactionDTO) (domain.Transaction, error) {
	var zero domain.Transaction
	transactionID, err := parseInt64("transactionId", dto.TransactionID)
	if err != nil {
		return zero, err
	}
	operationID, err := parseInt64("operationId", dto.OperationID)
	if err != nil {
		return zero, err
	}
	accountingDate, err := parseDate("accountingDate", dto.AccountingDate)
	if err != nil {
		return zero, err
	}
	valueDate, err := parseDate("valueDate", dto.ValueDate)
	if err != nil {
		return zero, err
	}
	return domain.Transaction{
		TransactionID:  transactionID,
		OperationID:    operationID,
		AccountingDate: accountingDate,
		ValueDate:      valueDate,
		Type:           dto.Type,
		Amount:         dto.Amount,
		Currency:       dto.Currency,
		Description:    dto.Description,
	}, nil
}

// Transactions maps a transaction list, failing on the first malformed entry.
func Transactions(dtos []fabrick.TransactionDTO) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, err := Transaction(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func address(dto *fabrick.AddressDTO) *domain.Address {
	if dto == nil {
		return nil
	}
	return &domain.Address{
		Address:     dto.Address,
		City:        dto.City,
		CountryCode: dto.CountryCode,
	}
}

func creditor(dto fabrick.CreditorDTO) domain.Creditor {
	return domain.Creditor{
		Name:    dto.Name,
		Account: domain.Account{AccountCode: dto.Account.AccountCode},
		Address: address(dto.Address),
	}
}

func debtor(dto fabrick.DebtorDTO) domain.Debtor {
	return domain.Debtor{
		Name:    dto.Name,
		Account: domain.Account{AccountCode: dto.Account.AccountCode},
	}
}

func amount(dto fabrick.AmountDTO) (domain.Amount, error) {
	currencyDate, err := parseDate("creditorCurrencyDate", dto.CreditorCurrencyDate)
	if err != nil {
		return domain.Amount{}, err
	}
	return domain.Amount{
		DebtorAmount:         dto.DebtorAmount,
		DebtorCurrency:       dto.DebtorCurrency,
		CreditorAmount:       dto.CreditorAmount,
		CreditorCurrency:     dto.CreditorCurrency,
		CreditorCurrencyDate: currencyDate,
		ExchangeRate:         dto.ExchangeRate,
	}, nil
}

func fees(dtos []fabrick.FeeDTO) []domain.Fee {
	out := make([]domain.Fee, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, domain.Fee{
			FeeCode:     dto.FeeCode,
			Description: dto.Description,
			Amount:      dto.Amount,
			Currency:    dto.Currency,
		})
	}
	return out
}

// LoanTransfer maps the transfer result payload. The nested creditor,
// debtor, address, amount and fee structures map 1:1; the string-typed
// identifiers become 64-bit integers.
func LoanTransfer(dto *fabrick.LoanTransferDTO) (*domain.LoanTransfer, error) {
	moneyTransferID, err := parseInt64("moneyTransferId", dto.MoneyTransferID)
	if err != nil {
		return nil, err
	}
	cro, err := parseInt64("cro", dto.Cro)
	if err != nil {
		return nil, err
	}
	feeAccountID, err := parseInt64("feeAccountId", dto.FeeAccountID)
	if err != nil {
		return nil, err
	}
	debtorValueDate, err := parseDate("debtorValueDate", dto.DebtorValueDate)
	if err != nil {
		return nil, err
	}
	creditorValueDate, err := parseDate("creditorValueDate", dto.CreditorValueDate)
	if err != nil {
		return nil, err
	}
	amt, err := amount(dto.Amount)
	if err != nil {
		return nil, err
	}
	return &domain.LoanTransfer{
		MoneyTransferID:   moneyTransferID,
		Status:            dto.Status,
		Direction:         dto.Direction,
		Creditor:          creditor(dto.Creditor),
		Address:           address(dto.Address),
		Debtor:            debtor(dto.Debtor),
		Cro:               cro,
		Uri:               dto.Uri,
		Trn:               dto.Trn,
		Description:       dto.Description,
		CreatedDatetime:   dto.CreatedDatetime,
		AccountedDatetime: dto.AccountedDatetime,
		DebtorValueDate:   debtorValueDate,
		CreditorValueDate: creditorValueDate,
		Amount:            amt,
		IsUrgent:          dto.IsUrgent,
		IsInstant:         dto.IsInstant,
		FeeType:           dto.FeeType,
		FeeAccountID:      feeAccountID,
		Fees:              fees(dto.Fees),
		HasTaxRelief:      dto.HasTaxRelief,
	}, nil
}
