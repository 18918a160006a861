package main

import (
	"fmt"

	wallet "github.com/PastellaOrg/pastella-wallet"
)

type ValidateOptions struct {
}

var ValidateCommand = &Command[ValidateOptions]{
	Name:        "pastella-wallet validate",
	Description: "Check whether one or more public addresses are well formed, including their embedded checksums.",
	UsageExamples: []string{
		"pastella-wallet validate <address>",
		"pastella-wallet validate <address> <address> ...",
	},
	Execute: func(_ *ValidateOptions, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: missing address", ErrPrintUsage)
		}

		invalid := 0
		for _, addr := range args {
			if wallet.IsValidAddress(addr) {
				fmt.Printf("%s %s\n", green("VALID  "), addr)
			} else {
				invalid += 1
				fmt.Printf("%s %s\n", red("INVALID"), addr)
			}
		}

		if invalid > 0 {
			return fmt.Errorf("%d of %d addresses failed validation", invalid, len(args))
		}
		return nil
	},
}
