package gainfolio

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/halverson/gainfolio/date"
)

func day(d int) date.Date { return date.New(2025, time.January, d) }

func usd[T float64 | int](v T) Money { return M(float64(v), "USD") }

func openLot(on date.Date, quantity, cost float64) Lot {
	return Lot{ID: uuid.New(), Symbol: "TEST", OpenedAt: on, Quantity: Q(quantity), Cost: usd(cost)}
}

func TestLots_Totals(t *testing.T) {
	queue := Lots{openLot(day(1), 10, 1005), openLot(day(2), 10, 1205)}
	if got := queue.Quantity(); !got.Equal(Q(20)) {
		t.Errorf("Quantity() = %s, want 20", got)
	}
	if got := queue.Cost(); !got.Equal(usd(2210)) {
		t.Errorf("Cost() = %s, want $2,210.00", got)
	}
}

func TestLot_UnitCost(t *testing.T) {
	lot := openLot(day(1), 10, 1005)
	if got := lot.UnitCost(); !got.Equal(usd(100.5)) {
		t.Errorf("UnitCost() = %s, want $100.50", got)
	}
	empty := Lot{Cost: usd(0)}
	if got := empty.UnitCost(); !got.IsZero() {
		t.Errorf("UnitCost() of empty lot = %s, want zero", got)
	}
}

func TestLots_ConsumeOldestFirst(t *testing.T) {
	first := openLot(day(1), 10, 1000)
	second := openLot(day(2), 10, 1200)
	queue := Lots{first, second}

	remaining, costBasis, matched := queue.consume(Q(15))

	if !costBasis.Equal(usd(1600)) { // 1000 + half of 1200
		t.Errorf("costBasis = %s, want $1,600.00", costBasis)
	}
	if len(remaining) != 1 {
		t.Fatalf("remaining = %d lots, want 1", len(remaining))
	}
	if !remaining[0].Quantity.Equal(Q(5)) || !remaining[0].Cost.Equal(usd(600)) {
		t.Errorf("remaining lot = %s units at %s, want 5 units at $600.00", remaining[0].Quantity, remaining[0].Cost)
	}
	if remaining[0].ID != second.ID {
		t.Error("remaining lot should be the second (newest) lot")
	}
	if len(matched) != 2 || matched[0] != first.ID || matched[1] != second.ID {
		t.Errorf("matched = %v, want [first, second]", matched)
	}
}

func TestLots_ConsumeSameDayKeepsInsertionOrder(t *testing.T) {
	// Two lots opened the same day: FIFO consumes the one inserted first.
	first := openLot(day(1), 5, 500)
	second := openLot(day(1), 5, 700)
	queue := Lots{first, second}

	remaining, costBasis, matched := queue.consume(Q(5))

	if !costBasis.Equal(usd(500)) {
		t.Errorf("costBasis = %s, want $500.00 (the first-inserted lot)", costBasis)
	}
	if len(matched) != 1 || matched[0] != first.ID {
		t.Errorf("matched = %v, want only the first-inserted lot", matched)
	}
	if len(remaining) != 1 || remaining[0].ID != second.ID {
		t.Error("second-inserted lot should remain untouched")
	}
}

func TestLots_ConsumeDoesNotMutateReceiver(t *testing.T) {
	queue := Lots{openLot(day(1), 10, 1000)}
	queue.consume(Q(4))
	if !queue[0].Quantity.Equal(Q(10)) || !queue[0].Cost.Equal(usd(1000)) {
		t.Errorf("receiver mutated: %s units at %s", queue[0].Quantity, queue[0].Cost)
	}
}

func TestLots_ConsumeProRataFee(t *testing.T) {
	// A $5 buy fee folded into a 10-unit lot: consuming half the lot
	// carries half the fee in the cost basis.
	queue := Lots{openLot(day(1), 10, 1205)} // 10 x 120 + 5 fee

	_, costBasis, _ := queue.consume(Q(5))
	if !costBasis.Equal(usd(602.5)) {
		t.Errorf("costBasis = %s, want $602.50 (5 x 120 + 2.50 fee)", costBasis)
	}
}
