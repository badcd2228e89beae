package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

type SetInterestRateRequest struct {
	Rate *decimal.Decimal `json:"rate"`
}

func (r SetInterestRateRequest) Validate() error {
	if r.Rate == nil {
		return errors.New("rate is required")
	}
	if r.Rate.IsNegative() {
		return errors.New("rate must be a non-negative number")
	}
	return nil
}

type InterestRateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}
