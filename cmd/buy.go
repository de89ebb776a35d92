package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio"
	"github.com/halverson/gainfolio/date"
	"github.com/shopspring/decimal"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	symbol   string
	exchange string
	quantity string
	price    string
	fee      string
	currency string
	account  string
	memo     string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a buy in the ledger" }
func (*buyCmd) Usage() string {
	return `gft buy -symbol <ticker> -quantity <n> -price <p> [-fee <f>] [-currency <cur>] [-date <date>]

  Appends a buy transaction to the ledger file.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.symbol, "symbol", "", "Security ticker, e.g. NVDA")
	f.StringVar(&c.exchange, "exchange", "", "Listing exchange, e.g. NASDAQ")
	f.StringVar(&c.quantity, "quantity", "", "Number of units bought")
	f.StringVar(&c.price, "price", "", "Price per unit")
	f.StringVar(&c.fee, "fee", "0", "Commission for the whole trade")
	f.StringVar(&c.currency, "currency", "", "Transaction currency, defaults to the reporting currency")
	f.StringVar(&c.account, "account", "", "Account-type tag, e.g. TFSA")
	f.StringVar(&c.memo, "memo", "", "Optional note")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := c.transaction(gainfolio.Buy)
	if status != subcommands.ExitSuccess {
		return status
	}
	return AppendTransaction(tx)
}

// transaction parses the shared buy/sell flags into a transaction.
func (c *buyCmd) transaction(side gainfolio.Side) (gainfolio.Transaction, subcommands.ExitStatus) {
	var tx gainfolio.Transaction

	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return tx, subcommands.ExitUsageError
	}
	quantity, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return tx, subcommands.ExitUsageError
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price %q: %v\n", c.price, err)
		return tx, subcommands.ExitUsageError
	}
	fee, err := decimal.NewFromString(c.fee)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing fee %q: %v\n", c.fee, err)
		return tx, subcommands.ExitUsageError
	}
	currency := c.currency
	if currency == "" {
		currency = *reportingCurrency
	}

	tx = gainfolio.Transaction{
		Side:     side,
		Date:     on,
		Symbol:   c.symbol,
		Exchange: c.exchange,
		Quantity: gainfolio.Q(quantity),
		Price:    gainfolio.M(price, currency),
		Fee:      gainfolio.M(fee, currency),
		Account:  c.account,
		Memo:     c.memo,
	}
	if err := tx.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return tx, subcommands.ExitUsageError
	}
	return tx, subcommands.ExitSuccess
}
