package domain

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// MinimumAmount is the smallest deposit or withdrawal accepted.
var MinimumAmount = decimal.New(1, -2)

// Ledger holds the state shared by a family of accounts: the ordinal
// sequencer, the interest rate and the clock used to stamp confirmation codes.
type Ledger struct {
	Sequencer    *Sequencer
	InterestRate *InterestRate
	Now          func() time.Time
}

func NewLedger(interestRate decimal.Decimal) (*Ledger, error) {
	rate, err := NewInterestRate(interestRate)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		Sequencer:    NewSequencer(),
		InterestRate: rate,
		Now:          func() time.Time { return time.Now().UTC() },
	}, nil
}

func (l *Ledger) confirm(kind TransactionKind, accountNumber string) string {
	return EncodeConfirmation(kind, accountNumber, l.Now(), l.Sequencer.Next())
}

type Account struct {
	mu sync.Mutex

	ledger        *Ledger
	accountNumber string
	firstName     string
	lastName      string
	timezone      TimeZone
	balance       decimal.Decimal
	createdAt     time.Time
}

// AccountSnapshot is a point-in-time copy of an account's state.
type AccountSnapshot struct {
	AccountNumber string
	FirstName     string
	LastName      string
	FullName      string
	Timezone      TimeZone
	Balance       decimal.Decimal
	CreatedAt     time.Time
}

// NewAccount builds an account bound to ledger. A zero timezone defaults to UTC.
func NewAccount(ledger *Ledger, accountNumber, firstName, lastName string, timezone TimeZone, initialBalance decimal.Decimal) (*Account, error) {
	if ledger == nil || ledger.Sequencer == nil || ledger.InterestRate == nil || ledger.Now == nil {
		return nil, newValidationError("ledger", "ledger is not configured")
	}

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return nil, newValidationError("accountNumber", "account number cannot be empty")
	}
	if strings.Contains(accountNumber, confirmationSeparator) {
		return nil, newValidationError("accountNumber", "account number cannot contain '-'")
	}

	first, err := validateName(firstName, "firstName", "First Name")
	if err != nil {
		return nil, err
	}
	last, err := validateName(lastName, "lastName", "Last Name")
	if err != nil {
		return nil, err
	}

	if initialBalance.IsNegative() {
		return nil, newValidationError("initialBalance", "initial balance cannot be negative")
	}

	if timezone.IsZero() {
		timezone = UTC()
	}

	return &Account{
		ledger:        ledger,
		accountNumber: accountNumber,
		firstName:     first,
		lastName:      last,
		timezone:      timezone,
		balance:       initialBalance,
		createdAt:     ledger.Now(),
	}, nil
}

func (a *Account) AccountNumber() string {
	return a.accountNumber
}

func (a *Account) FirstName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstName
}

func (a *Account) SetFirstName(value string) error {
	name, err := validateName(value, "firstName", "First Name")
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.firstName = name
	a.mu.Unlock()
	return nil
}

func (a *Account) LastName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastName
}

func (a *Account) SetLastName(value string) error {
	name, err := validateName(value, "lastName", "Last Name")
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.lastName = name
	a.mu.Unlock()
	return nil
}

func (a *Account) FullName() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.firstName + " " + a.lastName
}

func (a *Account) Timezone() TimeZone {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.timezone
}

func (a *Account) SetTimezone(zone TimeZone) error {
	if zone.IsZero() {
		return newValidationError("timezone", "time zone must be a valid TimeZone")
	}

	a.mu.Lock()
	a.timezone = zone
	a.mu.Unlock()
	return nil
}

func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) Snapshot() AccountSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AccountSnapshot{
		AccountNumber: a.accountNumber,
		FirstName:     a.firstName,
		LastName:      a.lastName,
		FullName:      a.firstName + " " + a.lastName,
		Timezone:      a.timezone,
		Balance:       a.balance,
		CreatedAt:     a.createdAt,
	}
}

// TransactionResult is the outcome of one account operation: the minted
// confirmation code and the balance as it stood when the lock was released.
type TransactionResult struct {
	ConfirmationCode string
	Kind             TransactionKind
	Balance          decimal.Decimal
}

// Deposit adds amount to the balance and returns a "D" confirmation code.
func (a *Account) Deposit(amount decimal.Decimal) (string, error) {
	result, err := a.Transact(TransactionKindDeposit, amount)
	return result.ConfirmationCode, err
}

// Withdraw takes amount from the balance and returns a "W" confirmation code.
// When the balance cannot cover amount nothing changes and an "X" code is
// returned without error.
func (a *Account) Withdraw(amount decimal.Decimal) (string, error) {
	result, err := a.Transact(TransactionKindWithdraw, amount)
	return result.ConfirmationCode, err
}

// PayInterest credits balance * rate / 100 using the ledger's rate at call
// time and returns an "I" confirmation code.
func (a *Account) PayInterest() string {
	result, _ := a.Transact(TransactionKindInterest, decimal.Zero)
	return result.ConfirmationCode
}

// Transact applies a deposit, withdrawal or interest payment and reports the
// resulting balance from inside the same critical section. amount is ignored
// for interest. A withdrawal the balance cannot cover yields Kind "X".
func (a *Account) Transact(kind TransactionKind, amount decimal.Decimal) (TransactionResult, error) {
	switch kind {
	case TransactionKindDeposit, TransactionKindWithdraw:
		if err := validateAmount(amount); err != nil {
			return TransactionResult{}, err
		}
	case TransactionKindInterest:
	default:
		return TransactionResult{}, newValidationError("kind", "transaction kind must be D, W or I")
	}

	var rate decimal.Decimal
	if kind == TransactionKindInterest {
		rate = a.ledger.InterestRate.Get()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	next := a.balance
	switch kind {
	case TransactionKindDeposit:
		next = a.balance.Add(amount)
	case TransactionKindWithdraw:
		next = a.balance.Sub(amount)
		if next.IsNegative() {
			kind = TransactionKindRejected
			next = a.balance
		}
	case TransactionKindInterest:
		next = a.balance.Add(a.balance.Mul(rate).Shift(-2))
	}

	code := a.ledger.confirm(kind, a.accountNumber)
	a.balance = next
	return TransactionResult{ConfirmationCode: code, Kind: kind, Balance: next}, nil
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThan(MinimumAmount) {
		return newValidationError("amount", "amount must be no less than 0.01")
	}
	return nil
}

func validateName(value, field, title string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", newValidationError(field, title+" cannot be empty")
	}
	return trimmed, nil
}
