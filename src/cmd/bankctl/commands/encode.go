package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/api-sage/bank-account/src/internal/domain"
)

func encodeCmd() *cobra.Command {
	var (
		kind    string
		account string
		ordinal uint64
		at      string
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Mint a confirmation code from its parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := domain.TransactionKind(strings.ToUpper(strings.TrimSpace(kind)))
			if !k.Valid() {
				return fmt.Errorf("kind must be one of D, W, I, X")
			}
			if strings.TrimSpace(account) == "" || strings.Contains(account, "-") {
				return fmt.Errorf("account must be non-empty and cannot contain '-'")
			}

			instant := time.Now().UTC()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("--at must be RFC3339: %w", err)
				}
				instant = parsed
			}

			fmt.Fprintln(cmd.OutOrStdout(), domain.EncodeConfirmation(k, account, instant, ordinal))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "D", "transaction kind tag (D, W, I, X)")
	cmd.Flags().StringVar(&account, "account", "", "account number")
	cmd.Flags().Uint64Var(&ordinal, "ordinal", 0, "transaction ordinal")
	cmd.Flags().StringVar(&at, "at", "", "transaction instant in RFC3339 (default now)")
	_ = cmd.MarkFlagRequired("account")
	return cmd
}
