package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	confirmationTimeLayout = "20060102150405"
	displayTimeLayout      = "2006-01-02 15:04:05"
	confirmationSeparator  = "-"
)

type TransactionKind string

const (
	TransactionKindDeposit  TransactionKind = "D"
	TransactionKindWithdraw TransactionKind = "W"
	TransactionKindInterest TransactionKind = "I"
	TransactionKindRejected TransactionKind = "X"
)

func (k TransactionKind) Valid() bool {
	switch k {
	case TransactionKindDeposit, TransactionKindWithdraw, TransactionKindInterest, TransactionKindRejected:
		return true
	}
	return false
}

func (k TransactionKind) Description() string {
	switch k {
	case TransactionKindDeposit:
		return "deposit"
	case TransactionKindWithdraw:
		return "withdraw"
	case TransactionKindInterest:
		return "interest"
	case TransactionKindRejected:
		return "rejected"
	}
	return "unknown"
}

// Receipt is a decoded confirmation code.
type Receipt struct {
	AccountNumber string          `json:"accountNumber"`
	Kind          TransactionKind `json:"transactionCode"`
	TransactionID uint64          `json:"transactionId"`
	TimeUTC       time.Time       `json:"timeUtc"`
	TimeDisplay   string          `json:"time"`
}

// EncodeConfirmation renders "{kind}-{account}-{YYYYMMDDHHMMSS}-{ordinal}".
// The timestamp is taken in UTC and truncated to whole seconds. Only instants
// in years 0000 through 9999 fit the fixed-width field; codes minted outside
// that range do not decode.
func EncodeConfirmation(kind TransactionKind, accountNumber string, now time.Time, ordinal uint64) string {
	return strings.Join([]string{
		string(kind),
		accountNumber,
		now.UTC().Format(confirmationTimeLayout),
		strconv.FormatUint(ordinal, 10),
	}, confirmationSeparator)
}

// DecodeConfirmation parses a code produced by EncodeConfirmation. The display
// time is the stored UTC instant shifted by zone; a zero zone means UTC.
func DecodeConfirmation(code string, zone TimeZone) (Receipt, error) {
	parts := strings.Split(code, confirmationSeparator)
	if len(parts) != 4 {
		return Receipt{}, &FormatError{
			Input:   code,
			Message: fmt.Sprintf("expected 4 fields, got %d", len(parts)),
		}
	}

	kind := TransactionKind(parts[0])
	if !kind.Valid() {
		return Receipt{}, &FormatError{Input: code, Message: fmt.Sprintf("unknown transaction kind %q", parts[0])}
	}

	instant, err := time.ParseInLocation(confirmationTimeLayout, parts[2], time.UTC)
	if err != nil {
		return Receipt{}, &FormatError{Input: code, Message: "invalid transaction datetime", Err: err}
	}

	ordinal, err := strconv.ParseUint(parts[3], 10, 64)
	if err != nil {
		return Receipt{}, &FormatError{Input: code, Message: "invalid transaction id", Err: err}
	}

	if zone.IsZero() {
		zone = UTC()
	}

	return Receipt{
		AccountNumber: parts[1],
		Kind:          kind,
		TransactionID: ordinal,
		TimeUTC:       instant,
		TimeDisplay:   fmt.Sprintf("%s (%s)", instant.Add(zone.Offset()).Format(displayTimeLayout), zone.Name()),
	}, nil
}
