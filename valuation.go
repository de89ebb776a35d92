package gainfolio

import (
	"github.com/halverson/gainfolio/date"
)

// Quote is the latest known price for a security, in the quote's own
// currency, observed on a given day.
type Quote struct {
	Symbol   string
	Exchange string
	Price    Money
	On       date.Date
}

// PriceProvider supplies the latest quote for a (symbol, exchange) pair.
// A missing quote is not an error: valuation fails soft on it.
type PriceProvider interface {
	Quote(symbol, exchange string) (Quote, bool)
}

// PriceTable is an in-memory PriceProvider.
type PriceTable struct {
	quotes map[string]Quote
}

// NewPriceTable creates an empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{quotes: make(map[string]Quote)}
}

func quoteKey(symbol, exchange string) string { return symbol + ":" + exchange }

// Add records a quote, replacing any previous quote for the same pair.
func (t *PriceTable) Add(q Quote) {
	t.quotes[quoteKey(q.Symbol, q.Exchange)] = q
}

// Quote returns the latest quote for the pair.
func (t *PriceTable) Quote(symbol, exchange string) (Quote, bool) {
	q, ok := t.quotes[quoteKey(symbol, exchange)]
	return q, ok
}

// Len returns the number of quotes in the table.
func (t *PriceTable) Len() int { return len(t.quotes) }

// HoldingValuation is the derived state of a single holding: remaining
// quantity, cost and market value in the reporting currency. It is
// recomputed on demand and never persisted.
type HoldingValuation struct {
	Symbol   string
	Exchange string
	Account  string

	Quantity    Quantity
	Cost        Money // total cost of open lots, fees included
	AverageCost Money // Cost / Quantity, zero when the position is empty

	// Market value of the position. When no quote is available the value
	// is zero and PriceUnavailable is set instead of failing.
	MarketValue      Money
	PriceUnavailable bool

	UnrealizedGain    Money
	UnrealizedGainPct Percent // undefined when Cost is zero
}

// ComputeValuation values a symbol's open lots against its latest quote.
// The quote price is normalized to the reporting currency using the
// quote's own currency and as-of day. A nil quote marks the holding
// PriceUnavailable rather than failing, so that one missing quote cannot
// abort a whole portfolio valuation. The only error is a missing exchange
// rate for the quote's currency.
func ComputeValuation(symbol string, open Lots, quote *Quote, normalizer *Normalizer, reportingCurrency string) (HoldingValuation, error) {
	cost := open.Cost()
	if cost.Currency() == "" {
		cost = M(0, reportingCurrency)
	}
	v := HoldingValuation{
		Symbol:      symbol,
		Quantity:    open.Quantity(),
		Cost:        cost,
		AverageCost: M(0, reportingCurrency),
		MarketValue: M(0, reportingCurrency),
	}
	if !v.Quantity.IsZero() {
		v.AverageCost = v.Cost.Div(v.Quantity)
	}

	if quote == nil {
		v.PriceUnavailable = true
		v.UnrealizedGain = M(0, reportingCurrency)
		v.UnrealizedGainPct = PercentUndefined
		return v, nil
	}
	v.Exchange = quote.Exchange

	price, err := normalizer.Convert(quote.Price, reportingCurrency, quote.On)
	if err != nil {
		return v, err
	}
	v.MarketValue = price.Mul(v.Quantity)
	v.UnrealizedGain = v.MarketValue.Sub(v.Cost)
	if v.Cost.IsZero() {
		v.UnrealizedGainPct = PercentUndefined
	} else {
		ratio := v.UnrealizedGain.Amount().Div(v.Cost.Amount())
		v.UnrealizedGainPct = Percent(ratio.InexactFloat64() * 100)
	}
	return v, nil
}

// ComputeValuations values every symbol of a gains result against a price
// provider. Symbols whose replay failed are skipped; symbols that fail
// during valuation (missing exchange rate) are reported in the error map
// under their symbol, without aborting the rest.
func ComputeValuations(gains *GainsResult, prices PriceProvider, rates RateProvider) ([]HoldingValuation, map[string]error) {
	normalizer := NewNormalizer(rates)
	errs := make(map[string]error)
	var valuations []HoldingValuation

	for _, s := range gains.Symbols {
		if s.Err != nil {
			errs[s.Symbol] = s.Err
			continue
		}
		var quote *Quote
		if q, ok := prices.Quote(s.Symbol, s.Exchange); ok {
			quote = &q
		}
		v, err := ComputeValuation(s.Symbol, s.OpenLots, quote, normalizer, gains.ReportingCurrency)
		v.Exchange = s.Exchange
		v.Account = s.Account
		if err != nil {
			errs[s.Symbol] = err
			continue
		}
		valuations = append(valuations, v)
	}
	if len(errs) == 0 {
		errs = nil
	}
	return valuations, errs
}
