package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TimeZoneRequest struct {
	Name          string `json:"name"`
	OffsetHours   int    `json:"offsetHours"`
	OffsetMinutes int    `json:"offsetMinutes"`
}

type TimeZoneResponse struct {
	Name          string `json:"name"`
	OffsetHours   int    `json:"offsetHours"`
	OffsetMinutes int    `json:"offsetMinutes"`
	Offset        string `json:"offset"`
}

type CreateAccountRequest struct {
	AccountNumber  string           `json:"accountNumber,omitempty"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Timezone       *TimeZoneRequest `json:"timezone,omitempty"`
	InitialBalance decimal.Decimal  `json:"initialBalance"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, "firstName is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, "lastName is required")
	}
	if strings.Contains(r.AccountNumber, "-") {
		errs = append(errs, "accountNumber cannot contain '-'")
	}
	if r.Timezone != nil && strings.TrimSpace(r.Timezone.Name) == "" {
		errs = append(errs, "timezone.name is required")
	}
	if r.InitialBalance.IsNegative() {
		errs = append(errs, "initialBalance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	AccountNumber string           `json:"accountNumber"`
	FirstName     string           `json:"firstName"`
	LastName      string           `json:"lastName"`
	FullName      string           `json:"fullName"`
	Timezone      TimeZoneResponse `json:"timezone"`
	Balance       decimal.Decimal  `json:"balance"`
	CreatedAt     string           `json:"createdAt"`
}
