package gainfolio

import (
	"fmt"

	"github.com/halverson/gainfolio/date"
)

// InsufficientLotsError reports a sell whose quantity exceeds the open lot
// quantity available for the symbol at that point in the replay. The book
// is left untouched; the ledger never goes negative implicitly.
type InsufficientLotsError struct {
	Symbol    string
	On        date.Date
	Requested Quantity
	Available Quantity
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf("insufficient lots for %s on %s: selling %s but only %s held",
		e.Symbol, e.On, e.Requested, e.Available)
}

// NonMonotonicInputError reports a transaction dated before an already
// ingested transaction for the same symbol. Replaying out of order would
// silently corrupt the cost basis, so the book rejects it instead.
type NonMonotonicInputError struct {
	Symbol string
	Last   date.Date
	Got    date.Date
}

func (e *NonMonotonicInputError) Error() string {
	return fmt.Sprintf("out-of-order transaction for %s: got %s after %s", e.Symbol, e.Got, e.Last)
}

// NoRateAvailableError reports that no exchange rate exists on or before
// the requested day for a currency pair.
type NoRateAvailableError struct {
	From string
	To   string
	On   date.Date
}

func (e *NoRateAvailableError) Error() string {
	return fmt.Sprintf("no %s to %s exchange rate available on or before %s", e.From, e.To, e.On)
}
