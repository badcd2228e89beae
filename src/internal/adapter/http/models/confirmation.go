package models

import (
	"errors"
	"strings"
)

type DecodeConfirmationRequest struct {
	ConfirmationCode string           `json:"confirmationCode"`
	Timezone         *TimeZoneRequest `json:"timezone,omitempty"`
}

func (r DecodeConfirmationRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.ConfirmationCode) == "" {
		errs = append(errs, "confirmationCode is required")
	}
	if r.Timezone != nil && strings.TrimSpace(r.Timezone.Name) == "" {
		errs = append(errs, "timezone.name is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type ConfirmationResponse struct {
	AccountNumber   string `json:"accountNumber"`
	TransactionCode string `json:"transactionCode"`
	TransactionKind string `json:"transactionKind"`
	TransactionID   uint64 `json:"transactionId"`
	TimeUTC         string `json:"timeUtc"`
	Time            string `json:"time"`
}
