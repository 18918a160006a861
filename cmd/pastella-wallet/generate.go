package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	wallet "github.com/PastellaOrg/pastella-wallet"
)

type GenerateOptions struct {
	ShowMnemonic bool
}

var GenerateCommand = &Command[GenerateOptions]{
	Name:        "pastella-wallet generate",
	Description: "Generate a new wallet and its mnemonic recovery phrase.",
	UsageExamples: []string{
		"pastella-wallet generate",
		"pastella-wallet generate -mnemonic=false",
	},
	AddFlags: func(flags *flag.FlagSet, opts *GenerateOptions) {
		flags.BoolVar(
			&opts.ShowMnemonic,
			"mnemonic",
			true,
			justifyOptionDescription(
				"Print the mnemonic recovery phrase. Set "+magenta("-mnemonic=false")+
					" to print only the keys and address, for example when scripting.",
			),
		)
	},
	Execute: func(opts *GenerateOptions, args []string) error {
		return generateAndPrintWallet(opts)
	},
}

func generateAndPrintWallet(opts *GenerateOptions) error {
	walletData, err := wallet.Generate()
	if err != nil {
		return err
	}

	fmt.Print("Generated a new wallet:\n\n")
	printWalletInfo(os.Stdout, walletData)
	fmt.Println()

	if !opts.ShowMnemonic {
		return nil
	}

	fmt.Print("This is the mnemonic phrase which can be used to recover the wallet:\n\n")
	printMnemonic(strings.Fields(walletData.Mnemonic))
	fmt.Print("\nSave this phrase in a secure place, preferably offline, on paper.\n\n")
	fmt.Print(
		underline(
			"If you do not save it now, you will " + bold("NEVER") + " see this phrase again.\n\n",
		),
	)

	return nil
}

func printMnemonic(words []string) {
	for i, word := range words {
		humanIndex := strconv.Itoa(i + 1)
		spacing := strings.Repeat(" ", 4-len(humanIndex))
		fmt.Printf("%s:%s%s\n", humanIndex, spacing, bold(magenta(word)))
	}
}
