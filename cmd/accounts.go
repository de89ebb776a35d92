package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio"
	"github.com/halverson/gainfolio/renderer"
)

// accountsCmd holds the flags for the 'accounts' subcommand.
type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "market value per account with the tax split" }
func (*accountsCmd) Usage() string {
	return `gft accounts

  Displays the portfolio by account-type tag, each tagged tax-advantaged
  or taxable, with the overall split.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rates, err := DecodeRates()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	classifier := gainfolio.DefaultAccountClassifier()
	report := gainfolio.Report(ledger, prices, rates, *reportingCurrency, classifier)
	printMarkdown(renderer.AccountsMarkdown(report, classifier))
	return subcommands.ExitSuccess
}
