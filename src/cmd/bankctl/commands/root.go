// Package commands implements the bankctl command line: offline tools for
// minting, decoding and exercising confirmation codes.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/api-sage/bank-account/src/internal/domain"
	"github.com/api-sage/bank-account/src/internal/logger"
)

type zoneFlags struct {
	name    string
	hours   int
	minutes int
}

func (f *zoneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "tz-name", "", "display time zone name (default UTC)")
	cmd.Flags().IntVar(&f.hours, "offset-hours", 0, "display time zone hour offset")
	cmd.Flags().IntVar(&f.minutes, "offset-minutes", 0, "display time zone minute offset")
}

func (f *zoneFlags) zone() (domain.TimeZone, error) {
	if f.name == "" && f.hours == 0 && f.minutes == 0 {
		return domain.UTC(), nil
	}
	return domain.NewTimeZone(f.name, f.hours, f.minutes)
}

func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:          "bankctl",
		Short:        "Confirmation code tooling for bank accounts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Configure(cmd.ErrOrStderr(), logLevel, "text")
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(decodeCmd(), encodeCmd(), simulateCmd())
	return root
}

func Execute() error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	return root.Execute()
}
