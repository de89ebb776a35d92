package gainfolio

import (
	"strings"
	"testing"
)

func TestEncodeTransaction(t *testing.T) {
	tx := NewBuy(day(1), "ACME", "NYSE", Q(10), usd(100), usd(5), "TFSA")

	var sb strings.Builder
	if err := EncodeTransaction(&sb, tx); err != nil {
		t.Fatal(err)
	}
	want := `{"side":"buy","date":"2025-01-01","symbol":"ACME","exchange":"NYSE","quantity":10,"price":100,"fee":5,"currency":"USD","account":"TFSA"}` + "\n"
	if sb.String() != want {
		t.Errorf("encoded:\n%s\nwant:\n%s", sb.String(), want)
	}
}

func TestDecodeLedger(t *testing.T) {
	const in = `{"side":"buy","date":"2025-01-01","symbol":"ACME","exchange":"NYSE","quantity":10,"price":100,"fee":5,"currency":"USD","account":"TFSA"}

{"side":"sell","date":"2025-01-02","symbol":"ACME","exchange":"NYSE","quantity":4,"price":150,"currency":"USD","account":"TFSA","memo":"trim"}
`
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", ledger.Len())
	}

	var txs []Transaction
	for tx := range ledger.Transactions() {
		txs = append(txs, tx)
	}
	buy, sell := txs[0], txs[1]
	if buy.Side != Buy || !buy.Quantity.Equal(Q(10)) || !buy.Price.Equal(usd(100)) || !buy.Fee.Equal(usd(5)) {
		t.Errorf("buy decoded as %+v", buy)
	}
	if sell.Side != Sell || sell.Memo != "trim" {
		t.Errorf("sell decoded as %+v", sell)
	}
	// An absent fee decodes as zero in the transaction currency.
	if !sell.Fee.IsZero() || sell.Fee.Currency() != "USD" {
		t.Errorf("sell fee = %s %s, want zero USD", sell.Fee, sell.Fee.Currency())
	}
}

func TestDecodeLedger_ReportsLineNumbers(t *testing.T) {
	const in = `{"side":"buy","date":"2025-01-01","symbol":"ACME","quantity":10,"price":100,"currency":"USD"}
{"side":"hold","date":"2025-01-02","symbol":"ACME","quantity":1,"price":100,"currency":"USD"}
`
	_, err := DecodeLedger(strings.NewReader(in))
	if err == nil {
		t.Fatal("invalid side should fail")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want a line 2 reference", err)
	}
}

func TestEncodeLedger_RoundTrip(t *testing.T) {
	ledger := NewLedger()
	err := ledger.Append(
		NewBuy(day(1), "ACME", "NYSE", Q(10), usd(100.5), usd(4.95), "TFSA"),
		NewSell(day(2), "ACME", "NYSE", Q(3), M(42.21, "CAD"), M(0, "CAD"), "RRSP"),
	)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := EncodeLedger(&sb, ledger); err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeLedger(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("Len() = %d, want %d", decoded.Len(), ledger.Len())
	}

	var orig, back []Transaction
	for tx := range ledger.Transactions() {
		orig = append(orig, tx)
	}
	for tx := range decoded.Transactions() {
		back = append(back, tx)
	}
	for i := range orig {
		a, b := orig[i], back[i]
		if a.Side != b.Side || a.Date != b.Date || a.Symbol != b.Symbol || a.Exchange != b.Exchange ||
			!a.Quantity.Equal(b.Quantity) || !a.Price.Equal(b.Price) || a.Account != b.Account {
			t.Errorf("transaction %d: %+v != %+v", i, a, b)
		}
	}
}
