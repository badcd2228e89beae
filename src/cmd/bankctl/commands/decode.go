package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/api-sage/bank-account/src/internal/domain"
)

func decodeCmd() *cobra.Command {
	var zf zoneFlags

	cmd := &cobra.Command{
		Use:   "decode CODE",
		Short: "Decode a confirmation code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, err := zf.zone()
			if err != nil {
				return err
			}

			receipt, err := domain.DecodeConfirmation(args[0], zone)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Account:        %s\n", receipt.AccountNumber)
			fmt.Fprintf(out, "Transaction:    %s (%s)\n", receipt.Kind, receipt.Kind.Description())
			fmt.Fprintf(out, "Transaction ID: %d\n", receipt.TransactionID)
			fmt.Fprintf(out, "Time (UTC):     %s\n", receipt.TimeUTC.Format("2006-01-02T15:04:05"))
			fmt.Fprintf(out, "Time:           %s\n", receipt.TimeDisplay)
			return nil
		},
	}

	zf.register(cmd)
	return cmd
}
