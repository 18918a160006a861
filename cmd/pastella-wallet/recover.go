package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	wallet "github.com/PastellaOrg/pastella-wallet"
	"github.com/PastellaOrg/pastella-wallet/mnemonic"
	"github.com/PastellaOrg/pastella-wallet/wordlist"
)

type RecoverOptions struct {
	SimpleInput bool
	WordFile    string
}

var RecoverCommand = &Command[RecoverOptions]{
	Name:        "pastella-wallet recover",
	Description: "Recover a wallet from an existing mnemonic recovery phrase.",
	UsageExamples: []string{
		"pastella-wallet recover",
		"pastella-wallet recover -simple",
		"pastella-wallet recover -word-file phrase.txt",
	},
	AddFlags: func(flags *flag.FlagSet, opts *RecoverOptions) {
		flags.BoolVar(
			&opts.SimpleInput,
			"simple",
			false,
			justifyOptionDescription(
				"Revert to a simpler terminal input mechanism for entering the recovery "+
					"phrase. Useful if the fancy terminal manipulation used by the default "+
					"input mode doesn't work on your system.",
			),
		)

		flags.StringVar(
			&opts.WordFile,
			"word-file",
			"",
			justifyOptionDescription(
				"Read the words of the mnemonic from this `file`. Words should be "+
					"separated by whitespace and the file should contain the exact words. "+
					"Useful for debugging.",
			),
		)
	},
	Execute: func(opts *RecoverOptions, args []string) error {
		return recoverAndPrintWallet(opts)
	},
}

func recoverAndPrintWallet(opts *RecoverOptions) error {
	var (
		words []string
		err   error
	)
	if opts.WordFile != "" {
		words, err = readWordFile(opts.WordFile)
	} else if opts.SimpleInput {
		words, err = userInputMnemonicSimple()
	} else {
		words, err = userInputMnemonic()
	}
	if err != nil {
		return err
	}

	walletData, err := wallet.ImportFromMnemonic(strings.Join(words, " "))
	if err != nil {
		return fmt.Errorf("failed to recover wallet: %w", err)
	}

	fmt.Print("Recovered wallet:\n\n")
	printWalletInfo(os.Stdout, walletData)
	fmt.Println()

	return nil
}

func readWordFile(fpath string) ([]string, error) {
	file, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	words := []string{}
	for scanner.Scan() {
		word := strings.ToLower(scanner.Text())
		if _, ok := wordlist.WordMap[word]; !ok {
			return nil, fmt.Errorf("found word in %s not present in wordlist", fpath)
		}
		words = append(words, word)

		if len(words) > mnemonic.WordCount {
			return nil, fmt.Errorf("invalid format for word file")
		}
	}
	if len(words) != mnemonic.WordCount {
		return nil, fmt.Errorf(
			"found %d words in word file %s, expected %d",
			len(words), fpath, mnemonic.WordCount,
		)
	}
	return words, nil
}
