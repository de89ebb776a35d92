package gainfolio

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/halverson/gainfolio/date"
)

// Book is the lot ledger: it consumes transactions one by one and keeps,
// per symbol, the FIFO queue of open purchase lots plus every realized
// gain event emitted so far.
//
// All amounts entering a Book are normalized into its reporting currency
// exactly once, at ingestion. Transactions sharing a symbol must be
// applied in chronological order; the Book rejects out-of-order input
// rather than silently corrupting the cost basis. Different symbols are
// independent.
type Book struct {
	cur        string
	normalizer *Normalizer
	open       map[string]Lots
	lastSeen   map[string]date.Date
	realized   []RealizedGainEvent
}

// NewBook creates an empty Book reporting in the given currency, drawing
// rates from the provider.
func NewBook(reportingCurrency string, rates RateProvider) *Book {
	return &Book{
		cur:        reportingCurrency,
		normalizer: NewNormalizer(rates),
		open:       make(map[string]Lots),
		lastSeen:   make(map[string]date.Date),
	}
}

// ReportingCurrency returns the currency all book amounts are held in.
func (b *Book) ReportingCurrency() string { return b.cur }

// Ingest applies a single transaction to the book. A buy opens a new lot
// and returns nil; a sell consumes the oldest open lots first and returns
// the realized gain event for the whole sale.
//
// Failures leave the book untouched: an oversell yields an
// InsufficientLotsError, a transaction dated before an already ingested
// one for the same symbol yields a NonMonotonicInputError, and an amount
// that cannot be normalized yields a NoRateAvailableError.
func (b *Book) Ingest(tx Transaction) (*RealizedGainEvent, error) {
	if err := tx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}
	if last, ok := b.lastSeen[tx.Symbol]; ok && tx.Date.Before(last) {
		return nil, &NonMonotonicInputError{Symbol: tx.Symbol, Last: last, Got: tx.Date}
	}

	// Normalize once, at ingestion, using the transaction's own day.
	price, err := b.normalizer.Convert(tx.Price, b.cur, tx.Date)
	if err != nil {
		return nil, err
	}
	fee, err := b.normalizer.Convert(tx.Fee, b.cur, tx.Date)
	if err != nil {
		return nil, err
	}

	var event *RealizedGainEvent
	switch tx.Side {
	case Buy:
		cost := price.Mul(tx.Quantity).Add(fee)
		b.open[tx.Symbol] = append(b.open[tx.Symbol], Lot{
			ID:       uuid.New(),
			Symbol:   tx.Symbol,
			OpenedAt: tx.Date,
			Quantity: tx.Quantity,
			Cost:     cost,
		})
	case Sell:
		queue := b.open[tx.Symbol]
		available := queue.Quantity()
		if tx.Quantity.GreaterThan(available) {
			return nil, &InsufficientLotsError{
				Symbol: tx.Symbol, On: tx.Date,
				Requested: tx.Quantity, Available: available,
			}
		}
		remaining, costBasis, matched := queue.consume(tx.Quantity)
		proceeds := price.Mul(tx.Quantity).Sub(fee)
		event = &RealizedGainEvent{
			Symbol:    tx.Symbol,
			On:        tx.Date,
			Quantity:  tx.Quantity,
			Proceeds:  proceeds,
			CostBasis: costBasis,
			Gain:      proceeds.Sub(costBasis),
			Lots:      matched,
		}
		b.open[tx.Symbol] = remaining
		b.realized = append(b.realized, *event)
	}
	b.lastSeen[tx.Symbol] = tx.Date
	return event, nil
}

// OpenLots returns a snapshot of the open lot queue for a symbol, oldest
// first. The snapshot is a copy: mutating it does not affect the book.
func (b *Book) OpenLots(symbol string) Lots {
	queue := b.open[symbol]
	if len(queue) == 0 {
		return nil
	}
	snapshot := make(Lots, len(queue))
	copy(snapshot, queue)
	return snapshot
}

// Realized returns a copy of all realized gain events, in ingestion order.
func (b *Book) Realized() []RealizedGainEvent {
	if len(b.realized) == 0 {
		return nil
	}
	events := make([]RealizedGainEvent, len(b.realized))
	copy(events, b.realized)
	return events
}

// Symbols returns every symbol the book has seen, sorted alphabetically.
func (b *Book) Symbols() []string {
	symbols := make([]string, 0, len(b.lastSeen))
	for s := range b.lastSeen {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
