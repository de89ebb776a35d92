package gainfolio

import (
	"github.com/google/uuid"
	"github.com/halverson/gainfolio/date"
)

// Lot is a slice of purchased quantity not yet fully sold. Its cost is the
// total cost of the remaining quantity in the reporting currency, with the
// buy-side fee folded in at ingestion, so that partial consumption
// allocates the fee pro-rata by quantity.
//
// Lots are owned by the Book that created them and exposed to other
// components only as value snapshots.
type Lot struct {
	ID       uuid.UUID
	Symbol   string
	OpenedAt date.Date
	Quantity Quantity // remaining quantity
	Cost     Money    // total cost of the remaining quantity
}

// UnitCost returns the cost of a single unit of this lot.
func (l Lot) UnitCost() Money {
	if l.Quantity.IsZero() {
		return M(0, l.Cost.Currency())
	}
	return l.Cost.Div(l.Quantity)
}

// Lots is a FIFO queue of open lots: front is oldest.
type Lots []Lot

// Quantity returns the total remaining quantity across all lots.
func (l Lots) Quantity() Quantity {
	var total Quantity
	for _, lot := range l {
		total = total.Add(lot.Quantity)
	}
	return total
}

// Cost returns the total cost of all remaining lot quantity.
func (l Lots) Cost() Money {
	var total Money
	for _, lot := range l {
		total = total.Add(lot.Cost)
	}
	return total
}

// consume removes quantityToSell from the front of the queue, oldest lot
// first. It returns the remaining queue, the cost basis of the consumed
// portions, and the identifiers of every lot touched, oldest first.
// The caller is responsible for checking availability beforehand.
func (l Lots) consume(quantityToSell Quantity) (remaining Lots, costBasis Money, matched []uuid.UUID) {
	for _, current := range l {
		if quantityToSell.IsZero() {
			remaining = append(remaining, current)
			continue
		}
		matched = append(matched, current.ID)
		if current.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot: cost is allocated pro-rata by
			// the consumed quantity fraction.
			costOfPortion := current.Cost.Mul(quantityToSell).Div(current.Quantity)
			costBasis = costBasis.Add(costOfPortion)
			current.Quantity = current.Quantity.Sub(quantityToSell)
			current.Cost = current.Cost.Sub(costOfPortion)
			remaining = append(remaining, current)
			quantityToSell = Q(0)
		} else {
			// Full consumption of this lot.
			costBasis = costBasis.Add(current.Cost)
			quantityToSell = quantityToSell.Sub(current.Quantity)
		}
	}
	return remaining, costBasis, matched
}

// RealizedGainEvent records the outcome of a single sale matched against
// one or more lots. It is immutable and append-only.
type RealizedGainEvent struct {
	Symbol    string
	On        date.Date
	Quantity  Quantity
	Proceeds  Money       // sale value net of the sell-side fee, reporting currency
	CostBasis Money       // cost of the consumed lot portions, fees included
	Gain      Money       // Proceeds - CostBasis
	Lots      []uuid.UUID // identifiers of the lots consumed, oldest first
}
