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

// gainsCmd holds the flags for the 'gains' subcommand.
type gainsCmd struct {
	symbol string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "realized gains by FIFO lot matching" }
func (*gainsCmd) Usage() string {
	return `gft gains [-symbol <ticker>]

  Replays the ledger and displays realized gains for each security.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Only report this ticker.")
}

func (c *gainsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result := gainfolio.ComputeGains(ledger, *reportingCurrency, rates)
	if c.symbol != "" {
		var kept []gainfolio.SymbolGains
		for _, s := range result.Symbols {
			if s.Symbol == c.symbol {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			fmt.Fprintf(os.Stderr, "No transactions for %q in %s\n", c.symbol, *ledgerFile)
			return subcommands.ExitFailure
		}
		result.Symbols = kept
	}

	printMarkdown(renderer.GainsMarkdown(result))
	return subcommands.ExitSuccess
}
