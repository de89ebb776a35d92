package gainfolio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRateTable_FallsBackToMostRecent(t *testing.T) {
	table := NewRateTable()
	table.Append("EUR", "USD", day(10), decimal.NewFromFloat(1.10))
	table.Append("EUR", "USD", day(20), decimal.NewFromFloat(1.20))

	tests := []struct {
		on   int
		want float64
		ok   bool
	}{
		{10, 1.10, true}, // exact day
		{15, 1.10, true}, // between two rates: the earlier one applies
		{20, 1.20, true},
		{25, 1.20, true}, // after the last rate: the last one applies
		{5, 0, false},    // before the first rate: nothing to fall back on
	}
	for _, tt := range tests {
		rate, ok := table.Rate("EUR", "USD", day(tt.on))
		if ok != tt.ok {
			t.Errorf("Rate(EUR, USD, day %d): ok = %v, want %v", tt.on, ok, tt.ok)
			continue
		}
		if ok && !rate.Equal(decimal.NewFromFloat(tt.want)) {
			t.Errorf("Rate(EUR, USD, day %d) = %s, want %v", tt.on, rate, tt.want)
		}
	}
}

func TestRateTable_UnknownPair(t *testing.T) {
	table := NewRateTable()
	table.Append("EUR", "USD", day(1), decimal.NewFromFloat(1.1))
	if _, ok := table.Rate("GBP", "USD", day(1)); ok {
		t.Error("Rate for a pair never appended should report no rate")
	}
}

func TestNormalizer_Identity(t *testing.T) {
	// Same-currency conversion never consults the provider, so an empty
	// table is enough.
	n := NewNormalizer(NewRateTable())
	got, err := n.Convert(usd(100), "USD", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(usd(100)) {
		t.Errorf("Convert = %s, want $100.00 unchanged", got)
	}
}

func TestNormalizer_Convert(t *testing.T) {
	table := NewRateTable()
	table.Append("EUR", "USD", day(1), decimal.NewFromFloat(1.1))
	n := NewNormalizer(table)

	got, err := n.Convert(M(100, "EUR"), "USD", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(usd(110)) {
		t.Errorf("Convert = %s, want $110.00", got)
	}
	if got.Currency() != "USD" {
		t.Errorf("Currency() = %q, want USD", got.Currency())
	}
}

func TestNormalizer_MissingRate(t *testing.T) {
	n := NewNormalizer(NewRateTable())
	_, err := n.Convert(M(100, "EUR"), "USD", day(1))
	var noRate *NoRateAvailableError
	if !errors.As(err, &noRate) {
		t.Fatalf("err = %v, want *NoRateAvailableError", err)
	}
	if noRate.From != "EUR" || noRate.To != "USD" {
		t.Errorf("error pair = %s/%s, want EUR/USD", noRate.From, noRate.To)
	}
}

func TestNormalizer_MemoizesWithinPass(t *testing.T) {
	table := NewRateTable()
	table.Append("EUR", "USD", day(1), decimal.NewFromFloat(1.1))
	n := NewNormalizer(table)

	first, err := n.Convert(M(100, "EUR"), "USD", day(1))
	if err != nil {
		t.Fatal(err)
	}

	// A second conversion of the same pair and day must reuse the memoized
	// rate even if the table changed underneath.
	table.Append("EUR", "USD", day(1), decimal.NewFromFloat(9.9))
	second, err := n.Convert(M(100, "EUR"), "USD", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if !second.Equal(first) {
		t.Errorf("second conversion = %s, want the memoized %s", second, first)
	}
}

func TestNormalizer_RoundTrip(t *testing.T) {
	table := NewRateTable()
	table.Append("EUR", "USD", day(1), decimal.NewFromFloat(1.25))
	table.Append("USD", "EUR", day(1), decimal.NewFromFloat(0.8))
	n := NewNormalizer(table)

	there, err := n.Convert(M(100, "EUR"), "USD", day(1))
	if err != nil {
		t.Fatal(err)
	}
	back, err := n.Convert(there, "EUR", day(1))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(M(100, "EUR")) {
		t.Errorf("round trip = %s, want EUR 100.00", back)
	}
}
