package renderer

import (
	"fmt"
	"strings"

	"github.com/halverson/gainfolio"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx gainfolio.Transaction) string {
	switch tx.Side {
	case gainfolio.Buy:
		return fmt.Sprintf("%s: bought %s %s at %s", tx.Date, tx.Quantity, tx.Symbol, tx.Price)
	case gainfolio.Sell:
		return fmt.Sprintf("%s: sold %s %s at %s", tx.Date, tx.Quantity, tx.Symbol, tx.Price)
	default:
		return fmt.Sprintf("%s: %s %s %s", tx.Date, tx.Side, tx.Quantity, tx.Symbol)
	}
}

// LedgerMarkdown renders the transaction log as a markdown table,
// chronological order.
func LedgerMarkdown(ledger *gainfolio.Ledger) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Side | Security | Quantity | Price | Fee | Account |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|:---|")
	for tx := range ledger.Transactions() {
		fee := ""
		if !tx.Fee.IsZero() {
			fee = tx.Fee.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date, tx.Side, tx.Symbol, tx.Quantity, tx.Price, fee, tx.Account)
	}
	return b.String()
}
