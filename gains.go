package gainfolio

import (
	"sort"
)

// SymbolGains is the outcome of replaying one symbol's transactions:
// the lots still open, the gains realized along the way, and the first
// error that interrupted the replay, if any. A failed symbol keeps the
// events emitted before the failure.
type SymbolGains struct {
	Symbol   string
	Exchange string // from the symbol's transactions, last one wins
	Account  string // account-type tag, last one wins
	OpenLots Lots
	Realized []RealizedGainEvent
	Err      error
}

// TotalRealized sums the gain of every realized event.
func (s SymbolGains) TotalRealized() Money {
	var total Money
	for _, ev := range s.Realized {
		total = total.Add(ev.Gain)
	}
	return total
}

// GainsResult holds the per-symbol replay results of a whole ledger.
type GainsResult struct {
	ReportingCurrency string
	Symbols           []SymbolGains // sorted by symbol
}

// Failed returns the symbols whose replay was interrupted by an error.
func (g *GainsResult) Failed() []SymbolGains {
	var failed []SymbolGains
	for _, s := range g.Symbols {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Realized returns every realized gain event across all symbols,
// chronologically per symbol, symbols in alphabetical order.
func (g *GainsResult) Realized() []RealizedGainEvent {
	var events []RealizedGainEvent
	for _, s := range g.Symbols {
		events = append(events, s.Realized...)
	}
	return events
}

// TotalRealized sums realized gains across all symbols.
func (g *GainsResult) TotalRealized() Money {
	total := M(0, g.ReportingCurrency)
	for _, s := range g.Symbols {
		total = total.Add(s.TotalRealized())
	}
	return total
}

// ComputeGains replays the full ledger through a fresh Book per symbol and
// returns open lots and realized events for each. An error on one symbol
// stops that symbol's replay only; every other symbol is unaffected.
//
// All symbols share one rate snapshot for the whole pass.
func ComputeGains(ledger *Ledger, reportingCurrency string, rates RateProvider) *GainsResult {
	result := &GainsResult{ReportingCurrency: reportingCurrency}

	// Group per symbol, preserving ledger order.
	bySymbol := make(map[string][]Transaction)
	for tx := range ledger.Transactions() {
		bySymbol[tx.Symbol] = append(bySymbol[tx.Symbol], tx)
	}

	// One Normalizer for the pass: every symbol's book shares its memo.
	normalizer := NewNormalizer(rates)

	for symbol, txs := range bySymbol {
		book := NewBook(reportingCurrency, rates)
		book.normalizer = normalizer

		gains := SymbolGains{Symbol: symbol}
		for _, tx := range txs {
			if tx.Exchange != "" {
				gains.Exchange = tx.Exchange
			}
			if tx.Account != "" {
				gains.Account = tx.Account
			}
			if _, err := book.Ingest(tx); err != nil {
				gains.Err = err
				break
			}
		}
		gains.OpenLots = book.OpenLots(symbol)
		gains.Realized = book.Realized()
		result.Symbols = append(result.Symbols, gains)
	}

	sort.Slice(result.Symbols, func(i, j int) bool {
		return result.Symbols[i].Symbol < result.Symbols[j].Symbol
	})
	return result
}
