package renderer

import (
	"bytes"
	"fmt"

	"github.com/halverson/gainfolio"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a full portfolio report: totals, the holdings
// table, and the allocation breakdowns.
func ReportMarkdown(r *gainfolio.PortfolioReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Report")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Market Value"),
			md.Bold(r.TotalMarketValue.String()),
		},
		Rows: [][]string{
			{"Cost", r.TotalCost.String()},
			{"Unrealized Gain", fmt.Sprintf("%s (%s)", r.UnrealizedGain.SignedString(), r.UnrealizedGainPct.SignedString())},
			{"Tax-Advantaged", fmt.Sprintf("%s (%s)", r.TaxAdvantaged.String(), r.TaxAdvantagedPct.String())},
			{"Taxable", r.Taxable.String()},
		},
	})

	if len(r.Holdings) > 0 {
		doc.H2("Holdings")
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{
				"Ticker",
				"Exchange",
				"Quantity",
				"Avg Cost",
				"Market Value",
				"Gain",
			},
		}
		for _, h := range r.Holdings {
			value := h.MarketValue.String()
			gain := fmt.Sprintf("%s (%s)", h.UnrealizedGain.SignedString(), h.UnrealizedGainPct.SignedString())
			if h.PriceUnavailable {
				value, gain = "n/a", "n/a"
			}
			table.Rows = append(table.Rows, []string{
				h.Symbol,
				h.Exchange,
				h.Quantity.String(),
				h.AverageCost.String(),
				value,
				gain,
			})
		}
		doc.Table(table)
	}

	allocationTable(doc, "By Country", r.ByCountry)
	allocationTable(doc, "By Exchange", r.ByExchange)
	allocationTable(doc, "By Account", r.ByAccount)

	if r.Unpriced > 0 {
		doc.PlainTextf("%d holding(s) have no available quote and are carried at zero market value.", r.Unpriced)
	}

	if len(r.Issues) > 0 {
		doc.H2("Issues")
		var issues []string
		for _, issue := range r.Issues {
			issues = append(issues, fmt.Sprintf("%s: %v", issue.Symbol, issue.Err))
		}
		doc.BulletList(issues...)
	}

	return doc.String()
}

func allocationTable(doc *md.Markdown, title string, buckets []gainfolio.Bucket) {
	if len(buckets) == 0 {
		return
	}
	doc.H2(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			"Bucket",
			"Market Value",
			"Gain",
			"Allocation",
		},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{
			b.Key,
			b.MarketValue.String(),
			b.Gain.SignedString(),
			b.Allocation.String(),
		})
	}
	doc.Table(table)
}
