package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// DefaultInterestRate is the percentage applied when none is configured.
var DefaultInterestRate = decimal.RequireFromString("0.5")

// InterestRate is the percentage shared by every account built on the same
// Ledger. A change is visible to all accounts on their next interest payment.
type InterestRate struct {
	mu    sync.RWMutex
	value decimal.Decimal
}

func NewInterestRate(value decimal.Decimal) (*InterestRate, error) {
	if err := validateInterestRate(value); err != nil {
		return nil, err
	}
	return &InterestRate{value: value}, nil
}

func (r *InterestRate) Get() decimal.Decimal {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

func (r *InterestRate) Set(value decimal.Decimal) error {
	if err := validateInterestRate(value); err != nil {
		return err
	}

	r.mu.Lock()
	r.value = value
	r.mu.Unlock()
	return nil
}

func validateInterestRate(value decimal.Decimal) error {
	if value.IsNegative() {
		return newValidationError("interestRate", "interest rate must be a non-negative number")
	}
	return nil
}
