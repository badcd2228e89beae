package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type AmountRequest struct {
	AccountNumber string          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

func (r AmountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}
	if r.Amount.LessThan(decimal.New(1, -2)) {
		errs = append(errs, "amount must be no less than 0.01")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type PayInterestRequest struct {
	AccountNumber string `json:"accountNumber"`
}

func (r PayInterestRequest) Validate() error {
	if strings.TrimSpace(r.AccountNumber) == "" {
		return errors.New("accountNumber is required")
	}
	return nil
}

type TransactionResponse struct {
	AccountNumber    string           `json:"accountNumber"`
	ConfirmationCode string           `json:"confirmationCode"`
	TransactionCode  string           `json:"transactionCode"`
	Status           string           `json:"status"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Balance          decimal.Decimal  `json:"balance"`
}
