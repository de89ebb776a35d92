package gainfolio

import (
	"github.com/halverson/gainfolio/date"
	"github.com/shopspring/decimal"
)

// RateProvider supplies exchange rates. A rate is the number of 'to' units
// one unit of 'from' is worth on the given day, or on the most recent day
// before it. Providers are read-only inputs: a provider handed to a
// valuation pass must not change underneath it.
type RateProvider interface {
	Rate(from, to string, on date.Date) (decimal.Decimal, bool)
}

// RateTable is an in-memory RateProvider backed by one chronological
// history per currency pair.
type RateTable struct {
	pairs map[string]*date.History[decimal.Decimal]
}

// NewRateTable creates an empty rate table.
func NewRateTable() *RateTable {
	return &RateTable{pairs: make(map[string]*date.History[decimal.Decimal])}
}

func pairKey(from, to string) string { return from + "/" + to }

// Append records a rate for a currency pair on a given day, overwriting
// any rate already recorded for that day.
func (t *RateTable) Append(from, to string, on date.Date, rate decimal.Decimal) {
	key := pairKey(from, to)
	h, ok := t.pairs[key]
	if !ok {
		h = &date.History[decimal.Decimal]{}
		t.pairs[key] = h
	}
	h.Append(on, rate)
}

// Rate returns the rate for the pair on the given day, falling back to the
// most recent rate before it.
func (t *RateTable) Rate(from, to string, on date.Date) (decimal.Decimal, bool) {
	h, ok := t.pairs[pairKey(from, to)]
	if !ok {
		return decimal.Decimal{}, false
	}
	return h.ValueAsOf(on)
}

// Len returns the total number of rate points in the table.
func (t *RateTable) Len() int {
	n := 0
	for _, h := range t.pairs {
		n += h.Len()
	}
	return n
}

type rateKey struct {
	from, to string
	on       date.Date
}

// Normalizer converts monetary amounts into a reporting currency. It
// memoizes every (from, to, day) lookup for its lifetime so that all
// conversions within one valuation pass see a consistent snapshot, even if
// the underlying provider is refreshed concurrently.
//
// A Normalizer is meant to live for exactly one pass; create a fresh one
// per computation.
type Normalizer struct {
	rates RateProvider
	memo  map[rateKey]decimal.Decimal
}

// NewNormalizer creates a Normalizer over the given provider.
func NewNormalizer(rates RateProvider) *Normalizer {
	return &Normalizer{rates: rates, memo: make(map[rateKey]decimal.Decimal)}
}

// Convert converts m into the 'to' currency as of the given day. Identity
// conversions return the input unchanged without any lookup. A currency
// pair with no rate on or before the day yields a NoRateAvailableError.
func (n *Normalizer) Convert(m Money, to string, asOf date.Date) (Money, error) {
	from := m.Currency()
	if from == to || from == "" {
		return Money{value: m.value, cur: to}, nil
	}
	key := rateKey{from: from, to: to, on: asOf}
	rate, ok := n.memo[key]
	if !ok {
		rate, ok = n.rates.Rate(from, to, asOf)
		if !ok {
			return Money{}, &NoRateAvailableError{From: from, To: to, On: asOf}
		}
		n.memo[key] = rate
	}
	return Money{value: m.value.Mul(rate), cur: to}, nil
}
