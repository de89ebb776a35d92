package renderer

import (
	"fmt"
	"strings"

	"github.com/halverson/gainfolio"
)

// GainsMarkdown renders the realized gains of a ledger replay, one
// section per symbol with an event table, plus the grand total.
func GainsMarkdown(result *gainfolio.GainsResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Gains (%s)\n\n", result.ReportingCurrency)

	fmt.Fprint(&b, "## Gains per Security\n\n")
	fmt.Fprintln(&b, "| Security | Events | Realized |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, s := range result.Symbols {
		if s.Err != nil || len(s.Realized) == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", s.Symbol, len(s.Realized), s.TotalRealized().SignedString())
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** |\n", "Total", result.TotalRealized().SignedString())

	if events := result.Realized(); len(events) > 0 {
		fmt.Fprint(&b, "\n## Events\n\n")
		fmt.Fprintln(&b, "| Date | Security | Quantity | Proceeds | Cost Basis | Gain |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
		for _, ev := range events {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				ev.On, ev.Symbol, ev.Quantity, ev.Proceeds, ev.CostBasis, ev.Gain.SignedString())
		}
	}

	if failed := result.Failed(); len(failed) > 0 {
		fmt.Fprint(&b, "\n## Issues\n\n")
		for _, s := range failed {
			fmt.Fprintf(&b, "- %s: %v\n", s.Symbol, s.Err)
		}
	}

	return b.String()
}
