// Package domain holds the strictly-typed results the gateway exposes to
// its clients, together with the error taxonomy of the integration core.
package domain

import "time"

// AccountBalance is the strict representation of an account as reported by
// the upstream. Built fresh per request, never mutated.
type AccountBalance struct {
	AccountID        int64     `json:"accountId"`
	Iban             string    `json:"iban"`
	AbiCode          int64     `json:"abiCode"`
	CabCode          int64     `json:"cabCode"`
	CountryCode      string    `json:"countryCode"`
	InternationalCin int32     `json:"internationalCin"`
	NationalCin      string    `json:"nationalCin"`
	AccountNumber    int64     `json:"account"`
	Alias            string    `json:"alias"`
	ProductName      string    `json:"productName"`
	HolderName       string    `json:"holderName"`
	ActivatedDate    time.Time `json:"activatedDate"`
	Currency         string    `json:"currency"`
}
