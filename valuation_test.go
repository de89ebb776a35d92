package gainfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeValuation(t *testing.T) {
	open := Lots{openLot(day(1), 10, 1005)} // average cost 100.50
	quote := &Quote{Symbol: "TEST", Exchange: "NYSE", Price: usd(150), On: day(5)}

	v, err := ComputeValuation("TEST", open, quote, NewNormalizer(NewRateTable()), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !v.AverageCost.Equal(usd(100.5)) {
		t.Errorf("AverageCost = %s, want $100.50", v.AverageCost)
	}
	if !v.MarketValue.Equal(usd(1500)) {
		t.Errorf("MarketValue = %s, want $1,500.00", v.MarketValue)
	}
	if !v.UnrealizedGain.Equal(usd(495)) {
		t.Errorf("UnrealizedGain = %s, want $495.00", v.UnrealizedGain)
	}
	if want := Percent(49.2537); !v.UnrealizedGainPct.Equal(want) {
		t.Errorf("UnrealizedGainPct = %s, want %s", v.UnrealizedGainPct, want)
	}
	if v.PriceUnavailable {
		t.Error("PriceUnavailable should be false when a quote exists")
	}
}

func TestComputeValuation_MissingQuote(t *testing.T) {
	open := Lots{openLot(day(1), 10, 1005)}

	v, err := ComputeValuation("TEST", open, nil, NewNormalizer(NewRateTable()), "USD")
	if err != nil {
		t.Fatalf("missing quote must not be an error: %v", err)
	}
	if !v.PriceUnavailable {
		t.Error("PriceUnavailable should be set")
	}
	if !v.MarketValue.IsZero() || !v.UnrealizedGain.IsZero() {
		t.Errorf("MarketValue = %s, UnrealizedGain = %s, want both zero", v.MarketValue, v.UnrealizedGain)
	}
	if v.UnrealizedGainPct.IsDefined() {
		t.Errorf("UnrealizedGainPct = %s, want undefined", v.UnrealizedGainPct)
	}
	// Cost information survives without a price.
	if !v.Cost.Equal(usd(1005)) || !v.AverageCost.Equal(usd(100.5)) {
		t.Errorf("Cost = %s, AverageCost = %s", v.Cost, v.AverageCost)
	}
}

func TestComputeValuation_EmptyPosition(t *testing.T) {
	quote := &Quote{Symbol: "TEST", Exchange: "NYSE", Price: usd(150), On: day(5)}

	v, err := ComputeValuation("TEST", nil, quote, NewNormalizer(NewRateTable()), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !v.AverageCost.IsZero() {
		t.Errorf("AverageCost = %s, want zero for an empty position", v.AverageCost)
	}
	if !v.MarketValue.IsZero() {
		t.Errorf("MarketValue = %s, want zero", v.MarketValue)
	}
	if v.UnrealizedGainPct.IsDefined() {
		t.Errorf("UnrealizedGainPct = %s, want undefined on zero cost", v.UnrealizedGainPct)
	}
}

func TestComputeValuation_ForeignQuote(t *testing.T) {
	rates := NewRateTable()
	rates.Append("EUR", "USD", day(5), decimal.NewFromFloat(1.2))
	open := Lots{openLot(day(1), 10, 1000)}
	quote := &Quote{Symbol: "TEST", Exchange: "NYSE", Price: M(100, "EUR"), On: day(5)}

	v, err := ComputeValuation("TEST", open, quote, NewNormalizer(rates), "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !v.MarketValue.Equal(usd(1200)) {
		t.Errorf("MarketValue = %s, want $1,200.00 at the day-5 rate", v.MarketValue)
	}
}

func TestComputeValuations(t *testing.T) {
	ledger := NewLedger()
	err := ledger.Append(
		NewBuy(day(1), "PRICED", "NYSE", Q(10), usd(100), usd(0), "tfsa"),
		NewBuy(day(1), "UNPRICED", "NYSE", Q(5), usd(50), usd(0), "broker"),
		NewBuy(day(1), "NORATE", "NYSE", Q(1), usd(10), usd(0), "broker"),
	)
	if err != nil {
		t.Fatal(err)
	}
	gains := ComputeGains(ledger, "USD", NewRateTable())

	prices := NewPriceTable()
	prices.Add(Quote{Symbol: "PRICED", Exchange: "NYSE", Price: usd(150), On: day(5)})
	prices.Add(Quote{Symbol: "NORATE", Exchange: "NYSE", Price: M(10, "EUR"), On: day(5)})

	valuations, errs := ComputeValuations(gains, prices, NewRateTable())

	if len(errs) != 1 || errs["NORATE"] == nil {
		t.Errorf("errs = %v, want only NORATE's missing rate", errs)
	}
	if len(valuations) != 2 {
		t.Fatalf("valuations = %d, want 2", len(valuations))
	}
	for _, v := range valuations {
		switch v.Symbol {
		case "PRICED":
			if !v.MarketValue.Equal(usd(1500)) || v.PriceUnavailable {
				t.Errorf("PRICED: MarketValue = %s, unavailable = %v", v.MarketValue, v.PriceUnavailable)
			}
			if v.Account != "tfsa" {
				t.Errorf("PRICED account = %q, want tfsa", v.Account)
			}
		case "UNPRICED":
			if !v.PriceUnavailable {
				t.Error("UNPRICED should be flagged PriceUnavailable")
			}
		default:
			t.Errorf("unexpected symbol %s", v.Symbol)
		}
	}
}
