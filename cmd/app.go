// Package cmd implements the CLI application to track capital gains.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/google/subcommands"
	"github.com/halverson/gainfolio"
)

// Register the subcommands. A main package calls Register(), then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&gainsCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "assistant")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var ledgerFile = flag.String("ledger-file", "trades.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var ratesFile = flag.String("rates-file", "rates.jsonl", "Path to the exchange-rate snapshots file (JSONL format)")
var pricesFile = flag.String("prices-file", "prices.jsonl", "Path to the price snapshots file (JSONL format)")
var reportingCurrency = flag.String("currency", "USD", "Reporting currency for all gains and valuations")

// DecodeLedger reads the app ledger file. A missing file is an empty
// ledger, not an error: the first buy creates it.
func DecodeLedger() (*gainfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return gainfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", *ledgerFile, err)
	}
	defer f.Close()
	return gainfolio.DecodeLedger(f)
}

// DecodeRates reads the app rates file. Missing file means an empty
// table, enough for single-currency ledgers.
func DecodeRates() (*gainfolio.RateTable, error) {
	f, err := os.Open(*ratesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return gainfolio.NewRateTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open rates %q: %w", *ratesFile, err)
	}
	defer f.Close()
	return gainfolio.DecodeRates(f)
}

// DecodePrices reads the app prices file. Missing file means no quotes:
// every holding is reported price-unavailable.
func DecodePrices() (*gainfolio.PriceTable, error) {
	f, err := os.Open(*pricesFile)
	if errors.Is(err, fs.ErrNotExist) {
		return gainfolio.NewPriceTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open prices %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return gainfolio.DecodePrices(f)
}

// AppendTransaction appends a single transaction to the app ledger file,
// creating it if needed. The whole ledger is re-read first so that the
// new transaction is validated against the existing ones.
func AppendTransaction(tx gainfolio.Transaction) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.Append(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := gainfolio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}
