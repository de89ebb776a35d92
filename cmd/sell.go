package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio"
)

// sellCmd shares the buy flags; only the side differs.
type sellCmd struct {
	buyCmd
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sell in the ledger" }
func (*sellCmd) Usage() string {
	return `gft sell -symbol <ticker> -quantity <n> -price <p> [-fee <f>] [-currency <cur>] [-date <date>]

  Appends a sell transaction to the ledger file. The realized gain is
  computed later, on report time, by FIFO lot matching.
`
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := c.transaction(gainfolio.Sell)
	if status != subcommands.ExitSuccess {
		return status
	}
	return AppendTransaction(tx)
}
