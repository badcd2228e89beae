package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/api-sage/bank-account/src/internal/domain"
)

// simulateCmd runs a short session against an in-process account and prints
// every confirmation code minted along the way.
func simulateCmd() *cobra.Command {
	var (
		account string
		balance string
		rate    string
		zf      zoneFlags
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run withdraw/deposit/withdraw/interest against a fresh account",
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := decimal.NewFromString(balance)
			if err != nil {
				return fmt.Errorf("--balance must be numeric: %w", err)
			}
			interestRate, err := decimal.NewFromString(rate)
			if err != nil {
				return fmt.Errorf("--rate must be numeric: %w", err)
			}
			zone, err := zf.zone()
			if err != nil {
				return err
			}

			ledger, err := domain.NewLedger(interestRate)
			if err != nil {
				return err
			}
			acct, err := domain.NewAccount(ledger, account, "Demo", "Customer", zone, initial)
			if err != nil {
				return err
			}

			steps := []struct {
				label string
				run   func() (string, error)
			}{
				{"withdraw 200", func() (string, error) { return acct.Withdraw(decimal.NewFromInt(200)) }},
				{"deposit 100", func() (string, error) { return acct.Deposit(decimal.NewFromInt(100)) }},
				{"withdraw 20", func() (string, error) { return acct.Withdraw(decimal.NewFromInt(20)) }},
				{"pay interest", func() (string, error) { return acct.PayInterest(), nil }},
			}

			out := cmd.OutOrStdout()
			for _, step := range steps {
				code, err := step.run()
				if err != nil {
					return fmt.Errorf("%s: %w", step.label, err)
				}
				receipt, err := domain.DecodeConfirmation(code, acct.Timezone())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-13s %-32s balance=%s time=%s\n", step.label, code, acct.Balance().StringFixed(2), receipt.TimeDisplay)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "A100", "account number")
	cmd.Flags().StringVar(&balance, "balance", "100.00", "initial balance")
	cmd.Flags().StringVar(&rate, "rate", domain.DefaultInterestRate.String(), "interest rate percentage")
	zf.register(cmd)
	return cmd
}
