package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	wallet "github.com/PastellaOrg/pastella-wallet"
)

type ImportOptions struct {
	Key string
}

var ImportCommand = &Command[ImportOptions]{
	Name:        "pastella-wallet import",
	Description: "Import a wallet from a 32-byte hex private key.",
	UsageExamples: []string{
		"pastella-wallet import -key <hex>",
		"pastella-wallet import",
	},
	AddFlags: func(flags *flag.FlagSet, opts *ImportOptions) {
		flags.StringVar(
			&opts.Key,
			"key",
			"",
			justifyOptionDescription(
				"The private key as 64 `hex` characters. If omitted, the key is "+
					"read from standard input so it stays out of shell history.",
			),
		)
	},
	Execute: func(opts *ImportOptions, args []string) error {
		return importAndPrintWallet(opts)
	},
}

func importAndPrintWallet(opts *ImportOptions) error {
	seedHex := opts.Key
	if seedHex == "" {
		eprint(faint("Enter private key (hex): "))
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read private key from standard input: %w", err)
		}
		seedHex = strings.TrimSpace(line)
	}

	walletData, err := wallet.ImportFromPrivateKey(seedHex)
	if err != nil {
		return fmt.Errorf("failed to import wallet: %w", err)
	}

	fmt.Print("Imported wallet:\n\n")
	printWalletInfo(os.Stdout, walletData)
	fmt.Println()

	return nil
}
