package main

import (
	"os"

	"github.com/api-sage/bank-account/src/cmd/bankctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
