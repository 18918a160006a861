package main

import (
	"errors"
	"flag"
	"fmt"
)

var (
	ErrPrintUsage         = errors.New("incorrect usage")
	ErrPrintUsageGraceful = errors.New("incorrect usage")
)

type Runner interface {
	Run(args []string) error
}

// Command pairs a flag set definition with an execution callback, so every
// subcommand gets consistent help output and usage-error handling for free.
type Command[Options any] struct {
	Name          string
	Description   string
	UsageExamples []string
	AddFlags      func(*flag.FlagSet, *Options)
	Execute       func(opts *Options, positionalArgs []string) error
}

func (cmd *Command[Options]) usage(flags *flag.FlagSet) func() {
	return func() {
		out := flags.Output()
		fmt.Fprintf(out, "%s\n\n", cmd.Name)
		if cmd.Description != "" {
			fmt.Fprintf(out, "%s\n\n", justifyTerminalWidth(2, cmd.Description))
		}
		if len(cmd.UsageExamples) > 0 {
			fmt.Fprintln(out, "Usage:")
			for _, line := range cmd.UsageExamples {
				fmt.Fprintf(out, "  %s\n", line)
			}
			fmt.Fprintln(out)
		}

		var hasFlags bool
		flags.VisitAll(func(_ *flag.Flag) { hasFlags = true })
		if hasFlags {
			fmt.Fprintln(out, "Options:")
			flags.PrintDefaults()
			fmt.Fprintln(out)
		}
	}
}

func (cmd *Command[Options]) Run(args []string) error {
	flags := flag.NewFlagSet(cmd.Name, flag.ExitOnError)

	var opts Options
	if cmd.AddFlags != nil {
		cmd.AddFlags(flags, &opts)
	}
	flags.Usage = cmd.usage(flags)

	if len(args) == 1 && args[0] == "help" {
		flags.Usage()
		return nil
	}

	if err := flags.Parse(args); err != nil {
		return err
	}

	err := cmd.Execute(&opts, flags.Args())
	if errors.Is(err, ErrPrintUsage) {
		flags.Usage()

		// Strip the sentinel so parent Commands don't print usage again.
		return errors.New(err.Error())
	}
	return err
}
