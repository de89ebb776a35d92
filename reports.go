package gainfolio

import (
	"sort"
)

// AccountClassifier maps an account-type tag to whether it is
// tax-advantaged. The classification is static and caller-supplied, never
// inferred from the data.
type AccountClassifier map[string]bool

// TaxAdvantaged reports whether the account-type tag is tax-advantaged.
// Unknown and empty tags are taxable.
func (c AccountClassifier) TaxAdvantaged(account string) bool {
	return c[account]
}

// DefaultAccountClassifier returns the classification for Canadian
// account types: registered accounts are tax-advantaged, everything else
// (NON_REG, MARGIN, unknown) is taxable.
func DefaultAccountClassifier() AccountClassifier {
	return AccountClassifier{
		"TFSA": true,
		"RRSP": true,
		"FHSA": true,
		"RESP": true,
		"LIRA": true,
		"RRIF": true,
	}
}

// exchangeCountries maps a listing exchange to its country code.
var exchangeCountries = map[string]string{
	"TSX":    "CA",
	"TSX-V":  "CA",
	"CSE":    "CA",
	"NYSE":   "US",
	"NASDAQ": "US",
	"AMEX":   "US",
	"NSE":    "IN",
	"BSE":    "IN",
}

// CountryOf derives the country bucket of an exchange. Unknown exchanges
// fall into "OTHER".
func CountryOf(exchange string) string {
	if c, ok := exchangeCountries[exchange]; ok {
		return c
	}
	return "OTHER"
}

// Bucket is one aggregation row: total market value and cost of the
// holdings sharing a key, and the bucket's share of the whole portfolio.
type Bucket struct {
	Key         string
	MarketValue Money
	Cost        Money
	Gain        Money
	Allocation  Percent
	Holdings    int
}

// SymbolIssue attaches a per-symbol error to the report it occurred in.
type SymbolIssue struct {
	Symbol string
	Err    error
}

// PortfolioReport is the aggregate view of a set of holding valuations,
// everything in one reporting currency. Bucket slices are sorted by
// descending market value, ties broken by key, so output is reproducible.
type PortfolioReport struct {
	ReportingCurrency string

	TotalMarketValue  Money
	TotalCost         Money
	UnrealizedGain    Money
	UnrealizedGainPct Percent

	Holdings   []HoldingValuation // sorted by descending market value
	ByCountry  []Bucket
	ByExchange []Bucket
	ByAccount  []Bucket

	TaxAdvantaged    Money
	Taxable          Money
	TaxAdvantagedPct Percent

	// Unpriced counts holdings carried with no market value because no
	// quote was available. They contribute zero to totals and allocation.
	Unpriced int

	Issues []SymbolIssue // per-symbol replay or valuation failures, sorted by symbol
}

// ComputePortfolioReport rolls holding valuations into country, exchange
// and account-type buckets. Holdings flagged PriceUnavailable contribute
// zero to both allocation numerator and denominator and are surfaced via
// the Unpriced count.
func ComputePortfolioReport(valuations []HoldingValuation, classifier AccountClassifier, reportingCurrency string) *PortfolioReport {
	r := &PortfolioReport{
		ReportingCurrency: reportingCurrency,
		TotalMarketValue:  M(0, reportingCurrency),
		TotalCost:         M(0, reportingCurrency),
		TaxAdvantaged:     M(0, reportingCurrency),
		Taxable:           M(0, reportingCurrency),
	}

	byCountry := make(map[string]*Bucket)
	byExchange := make(map[string]*Bucket)
	byAccount := make(map[string]*Bucket)

	for _, v := range valuations {
		if v.PriceUnavailable {
			r.Unpriced++
		}
		r.TotalMarketValue = r.TotalMarketValue.Add(v.MarketValue)
		r.TotalCost = r.TotalCost.Add(v.Cost)

		if classifier.TaxAdvantaged(v.Account) {
			r.TaxAdvantaged = r.TaxAdvantaged.Add(v.MarketValue)
		} else {
			r.Taxable = r.Taxable.Add(v.MarketValue)
		}

		accumulate(byCountry, CountryOf(v.Exchange), v, reportingCurrency)
		accumulate(byExchange, v.Exchange, v, reportingCurrency)
		accumulate(byAccount, accountKey(v.Account), v, reportingCurrency)
	}

	r.UnrealizedGain = r.TotalMarketValue.Sub(r.TotalCost)
	r.UnrealizedGainPct = ratio(r.UnrealizedGain, r.TotalCost)
	r.TaxAdvantagedPct = share(r.TaxAdvantaged, r.TotalMarketValue)

	r.ByCountry = finalize(byCountry, r.TotalMarketValue)
	r.ByExchange = finalize(byExchange, r.TotalMarketValue)
	r.ByAccount = finalize(byAccount, r.TotalMarketValue)

	r.Holdings = make([]HoldingValuation, len(valuations))
	copy(r.Holdings, valuations)
	sort.Slice(r.Holdings, func(i, j int) bool {
		a, b := r.Holdings[i], r.Holdings[j]
		if !a.MarketValue.Equal(b.MarketValue) {
			return a.MarketValue.GreaterThan(b.MarketValue)
		}
		return a.Symbol < b.Symbol
	})

	return r
}

// AddIssue records a per-symbol failure in the report, keeping the issue
// list sorted by symbol.
func (r *PortfolioReport) AddIssue(symbol string, err error) {
	r.Issues = append(r.Issues, SymbolIssue{Symbol: symbol, Err: err})
	sort.Slice(r.Issues, func(i, j int) bool { return r.Issues[i].Symbol < r.Issues[j].Symbol })
}

func accountKey(account string) string {
	if account == "" {
		return "UNASSIGNED"
	}
	return account
}

func accumulate(buckets map[string]*Bucket, key string, v HoldingValuation, cur string) {
	b, ok := buckets[key]
	if !ok {
		b = &Bucket{Key: key, MarketValue: M(0, cur), Cost: M(0, cur)}
		buckets[key] = b
	}
	b.MarketValue = b.MarketValue.Add(v.MarketValue)
	b.Cost = b.Cost.Add(v.Cost)
	b.Holdings++
}

// finalize computes allocations and emits buckets in deterministic order:
// descending market value, ties broken by key.
func finalize(buckets map[string]*Bucket, total Money) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		b.Gain = b.MarketValue.Sub(b.Cost)
		b.Allocation = share(b.MarketValue, total)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.MarketValue.Equal(b.MarketValue) {
			return a.MarketValue.GreaterThan(b.MarketValue)
		}
		return a.Key < b.Key
	})
	return out
}

// ratio returns part/base as a percentage, undefined on a zero base.
func ratio(part, base Money) Percent {
	if base.IsZero() {
		return PercentUndefined
	}
	return Percent(part.Amount().Div(base.Amount()).InexactFloat64() * 100)
}

// share is like ratio but a zero base yields 0%, the empty-portfolio
// convention for allocations.
func share(part, base Money) Percent {
	if base.IsZero() {
		return Percent(0)
	}
	return Percent(part.Amount().Div(base.Amount()).InexactFloat64() * 100)
}

// Report runs the full pipeline over a ledger: FIFO replay, valuation
// against the price provider, and aggregation. Per-symbol failures are
// collected into the report's issues instead of aborting the whole
// computation.
func Report(ledger *Ledger, prices PriceProvider, rates RateProvider, reportingCurrency string, classifier AccountClassifier) *PortfolioReport {
	gains := ComputeGains(ledger, reportingCurrency, rates)
	valuations, errs := ComputeValuations(gains, prices, rates)
	report := ComputePortfolioReport(valuations, classifier, reportingCurrency)
	for symbol, err := range errs {
		report.AddIssue(symbol, err)
	}
	return report
}
