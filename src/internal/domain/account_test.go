package domain

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var fixedNow = time.Date(2019, 3, 25, 22, 49, 18, 0, time.UTC)

func newTestLedger(t *testing.T, rate string) *Ledger {
	t.Helper()
	ledger, err := NewLedger(decimal.RequireFromString(rate))
	require.NoError(t, err)
	ledger.Now = func() time.Time { return fixedNow }
	return ledger
}

func newTestAccount(t *testing.T, ledger *Ledger, balance string) *Account {
	t.Helper()
	account, err := NewAccount(ledger, "A100", "Eric", "Idle", TimeZone{}, decimal.RequireFromString(balance))
	require.NoError(t, err)
	return account
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewAccountDefaults(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "0")

	assert.Equal(t, "A100", account.AccountNumber())
	assert.Equal(t, "Eric", account.FirstName())
	assert.Equal(t, "Idle", account.LastName())
	assert.Equal(t, "Eric Idle", account.FullName())
	assert.True(t, account.Timezone().Equal(UTC()))
	assert.True(t, account.Balance().IsZero())
	assert.Equal(t, fixedNow, account.Snapshot().CreatedAt)
}

func TestNewAccountValidation(t *testing.T) {
	ledger := newTestLedger(t, "0.5")

	tests := []struct {
		desc    string
		number  string
		first   string
		last    string
		balance string
		field   string
	}{
		{"empty number", " ", "Eric", "Idle", "0", "accountNumber"},
		{"dash in number", "A-100", "Eric", "Idle", "0", "accountNumber"},
		{"empty first name", "A100", "  ", "Idle", "0", "firstName"},
		{"empty last name", "A100", "Eric", "", "0", "lastName"},
		{"negative balance", "A100", "Eric", "Idle", "-0.01", "initialBalance"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewAccount(ledger, tt.number, tt.first, tt.last, TimeZone{}, amount(tt.balance))
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	_, err := NewAccount(nil, "A100", "Eric", "Idle", TimeZone{}, decimal.Zero)
	assert.True(t, IsValidationError(err))
}

func TestAccountNameSetters(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "0")

	require.NoError(t, account.SetFirstName(" John "))
	require.NoError(t, account.SetLastName("Cleese"))
	assert.Equal(t, "John Cleese", account.FullName())

	assert.True(t, IsValidationError(account.SetFirstName("")))
	assert.True(t, IsValidationError(account.SetLastName("   ")))
	assert.Equal(t, "John Cleese", account.FullName())
}

func TestAccountSetTimezone(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "0")

	mst, err := NewTimeZone("MST", -7, 0)
	require.NoError(t, err)
	require.NoError(t, account.SetTimezone(mst))
	assert.True(t, account.Timezone().Equal(mst))

	assert.True(t, IsValidationError(account.SetTimezone(TimeZone{})))
	assert.True(t, account.Timezone().Equal(mst))
}

func TestAccountDeposit(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "100.00")

	for _, a := range []string{"0.01", "1", "99.99", "12345.67"} {
		before := account.Balance()
		code, err := account.Deposit(amount(a))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "D-"), code)
		assert.True(t, before.Add(amount(a)).Equal(account.Balance()))
	}
}

func TestAccountDepositRejectsBadAmounts(t *testing.T) {
	ledger := newTestLedger(t, "0.5")
	account := newTestAccount(t, ledger, "100.00")

	for _, a := range []string{"0", "0.009", "-1", "-0.01"} {
		code, err := account.Deposit(amount(a))
		assert.Empty(t, code)
		assert.True(t, IsValidationError(err), a)
	}
	assert.True(t, amount("100").Equal(account.Balance()))
	assert.Equal(t, uint64(0), ledger.Sequencer.Issued())
}

func TestAccountWithdraw(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "100.00")

	code, err := account.Withdraw(amount("100.01"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "X-"), code)
	assert.True(t, amount("100").Equal(account.Balance()))

	code, err = account.Withdraw(amount("100"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "W-"), code)
	assert.True(t, account.Balance().IsZero())

	_, err = account.Withdraw(amount("-5"))
	assert.True(t, IsValidationError(err))
	assert.True(t, account.Balance().IsZero())
}

func TestAccountScenario(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "100.00")

	code, err := account.Withdraw(amount("200"))
	require.NoError(t, err)
	assert.Equal(t, "X-A100-20190325224918-0", code)
	assert.Equal(t, "100.00", account.Balance().StringFixed(2))

	code, err = account.Deposit(amount("100"))
	require.NoError(t, err)
	assert.Equal(t, "D-A100-20190325224918-1", code)
	assert.Equal(t, "200.00", account.Balance().StringFixed(2))

	code, err = account.Withdraw(amount("20"))
	require.NoError(t, err)
	assert.Equal(t, "W-A100-20190325224918-2", code)
	assert.Equal(t, "180.00", account.Balance().StringFixed(2))
}

func TestAccountPayInterest(t *testing.T) {
	ledger := newTestLedger(t, "0.5")
	account := newTestAccount(t, ledger, "100.00")

	code := account.PayInterest()
	assert.True(t, strings.HasPrefix(code, "I-"), code)
	assert.True(t, amount("100.5").Equal(account.Balance()))

	require.NoError(t, ledger.InterestRate.Set(amount("10")))
	account.PayInterest()
	assert.True(t, amount("110.55").Equal(account.Balance()))
}

func TestPayInterestFormula(t *testing.T) {
	cases := []struct{ balance, rate string }{
		{"0", "5"},
		{"100", "0"},
		{"123.45", "0.5"},
		{"1000000.01", "3.75"},
	}

	for _, c := range cases {
		account := newTestAccount(t, newTestLedger(t, c.rate), c.balance)
		account.PayInterest()

		want := amount(c.balance).Mul(decimal.NewFromInt(1).Add(amount(c.rate).Div(decimal.NewFromInt(100))))
		assert.True(t, want.Equal(account.Balance()), "balance=%s rate=%s got=%s", c.balance, c.rate, account.Balance())
	}
}

func TestSharedInterestRateVisibleToAllAccounts(t *testing.T) {
	ledger := newTestLedger(t, "0")
	a, err := NewAccount(ledger, "A1", "A", "One", TimeZone{}, amount("100"))
	require.NoError(t, err)
	b, err := NewAccount(ledger, "B1", "B", "Two", TimeZone{}, amount("200"))
	require.NoError(t, err)

	require.NoError(t, ledger.InterestRate.Set(amount("1")))
	a.PayInterest()
	b.PayInterest()

	assert.True(t, amount("101").Equal(a.Balance()))
	assert.True(t, amount("202").Equal(b.Balance()))
}

func TestInterestRateValidation(t *testing.T) {
	_, err := NewInterestRate(amount("-0.1"))
	assert.True(t, IsValidationError(err))

	_, err = NewLedger(amount("-1"))
	assert.True(t, IsValidationError(err))

	rate, err := NewInterestRate(amount("0"))
	require.NoError(t, err)
	assert.True(t, IsValidationError(rate.Set(amount("-2"))))
	assert.True(t, rate.Get().IsZero())
}

func TestOrdinalsSharedAcrossAccounts(t *testing.T) {
	ledger := newTestLedger(t, "0.5")
	a, err := NewAccount(ledger, "A1", "A", "One", TimeZone{}, amount("10"))
	require.NoError(t, err)
	b, err := NewAccount(ledger, "B1", "B", "Two", TimeZone{}, amount("10"))
	require.NoError(t, err)

	codes := []string{}
	code, _ := a.Deposit(amount("1"))
	codes = append(codes, code)
	code, _ = b.Withdraw(amount("50"))
	codes = append(codes, code)
	codes = append(codes, a.PayInterest())

	for i, c := range codes {
		receipt, err := DecodeConfirmation(c, UTC())
		require.NoError(t, err)
		assert.Equal(t, uint64(i), receipt.TransactionID)
	}
}

func TestAccountConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	ledger := newTestLedger(t, "0.5")
	account := newTestAccount(t, ledger, "100.00")

	const workers = 50
	var (
		mu    sync.Mutex
		codes = make(map[string]struct{}, workers*2)
	)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w, err := account.Withdraw(amount("3"))
			if err != nil {
				return err
			}
			d, err := account.Deposit(amount("1"))
			if err != nil {
				return err
			}
			mu.Lock()
			codes[w] = struct{}{}
			codes[d] = struct{}{}
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.False(t, account.Balance().IsNegative())
	assert.Len(t, codes, workers*2)
	assert.Equal(t, uint64(workers*2), ledger.Sequencer.Issued())

	accepted := 0
	for code := range codes {
		if strings.HasPrefix(code, "W-") {
			accepted++
		}
	}
	want := amount("100").Sub(decimal.NewFromInt(int64(accepted * 3))).Add(decimal.NewFromInt(workers))
	assert.True(t, want.Equal(account.Balance()))
}

func TestAccountTransactReportsBalance(t *testing.T) {
	account := newTestAccount(t, newTestLedger(t, "0.5"), "100.00")

	result, err := account.Transact(TransactionKindWithdraw, amount("200"))
	require.NoError(t, err)
	assert.Equal(t, TransactionKindRejected, result.Kind)
	assert.Equal(t, "X-A100-20190325224918-0", result.ConfirmationCode)
	assert.Equal(t, "100.00", result.Balance.StringFixed(2))

	result, err = account.Transact(TransactionKindDeposit, amount("100"))
	require.NoError(t, err)
	assert.Equal(t, TransactionKindDeposit, result.Kind)
	assert.Equal(t, "200.00", result.Balance.StringFixed(2))

	result, err = account.Transact(TransactionKindInterest, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, TransactionKindInterest, result.Kind)
	assert.Equal(t, "201.00", result.Balance.StringFixed(2))

	for _, kind := range []TransactionKind{TransactionKindRejected, "Q"} {
		_, err = account.Transact(kind, amount("1"))
		assert.True(t, IsValidationError(err), kind)
	}
	assert.Equal(t, "201.00", account.Balance().StringFixed(2))
}

func TestAccountTransactBalanceMatchesOwnOperation(t *testing.T) {
	const n = 200
	ledger := newTestLedger(t, "0")
	account := newTestAccount(t, ledger, "0")

	results := make([]TransactionResult, n)
	var g errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			result, err := account.Transact(TransactionKindDeposit, amount("1"))
			results[i] = result
			return err
		})
	}
	require.NoError(t, g.Wait())

	// Each deposit's reported balance equals its ordinal + 1, so no result
	// carries a balance touched by another caller.
	for _, result := range results {
		receipt, err := DecodeConfirmation(result.ConfirmationCode, TimeZone{})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(int64(receipt.TransactionID)+1).Equal(result.Balance), result.ConfirmationCode)
	}
}
