package renderer

import (
	"fmt"
	"strings"

	"github.com/halverson/gainfolio"
)

// AccountsMarkdown renders the by-account view of a report: one row per
// account-type tag with its classification, and the tax split.
func AccountsMarkdown(r *gainfolio.PortfolioReport, classifier gainfolio.AccountClassifier) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Accounts (%s)\n\n", r.ReportingCurrency)

	fmt.Fprintln(&b, "| Account | Classification | Market Value | Gain | Allocation |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
	for _, bucket := range r.ByAccount {
		class := "taxable"
		if classifier.TaxAdvantaged(bucket.Key) {
			class = "tax-advantaged"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			bucket.Key, class, bucket.MarketValue, bucket.Gain.SignedString(), bucket.Allocation)
	}

	fmt.Fprint(&b, "\n## Tax Split\n\n")
	fmt.Fprintln(&b, "| | Market Value | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	fmt.Fprintf(&b, "| Tax-Advantaged | %s | %s |\n", r.TaxAdvantaged, r.TaxAdvantagedPct)
	fmt.Fprintf(&b, "| Taxable | %s | %s |\n", r.Taxable, taxableShare(r))

	return b.String()
}

func taxableShare(r *gainfolio.PortfolioReport) gainfolio.Percent {
	if !r.TaxAdvantagedPct.IsDefined() {
		return gainfolio.PercentUndefined
	}
	return gainfolio.Percent(100) - r.TaxAdvantagedPct
}
