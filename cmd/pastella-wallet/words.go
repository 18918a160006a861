package main

import (
	"fmt"
	"strings"

	"github.com/PastellaOrg/pastella-wallet/wordlist"
)

type WordsOptions struct {
}

var WordsCommand = &Command[WordsOptions]{
	Name:        "pastella-wallet words",
	Description: "Print the mnemonic dictionary, optionally filtered by a prefix.",
	UsageExamples: []string{
		"pastella-wallet words",
		"pastella-wallet words qu",
	},
	Execute: func(_ *WordsOptions, args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("%w: expected at most one prefix argument", ErrPrintUsage)
		}

		if len(args) == 0 {
			for _, word := range wordlist.WordList {
				fmt.Println(word)
			}
			return nil
		}

		prefix := strings.ToLower(strings.TrimSpace(args[0]))
		searchResult := wordlist.Search(prefix)
		if len(searchResult.Suffixes) == 0 {
			return fmt.Errorf("no words start with %q", prefix)
		}
		for _, suffix := range searchResult.Suffixes {
			fmt.Println(prefix + suffix)
		}
		return nil
	},
}
