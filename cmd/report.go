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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full portfolio report with valuations and allocations" }
func (*reportCmd) Usage() string {
	return `gft report

  Values every open position against the latest quotes and displays
  holdings, allocation breakdowns and the tax-advantaged split.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := gainfolio.Report(ledger, prices, rates, *reportingCurrency, gainfolio.DefaultAccountClassifier())
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
