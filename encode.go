package gainfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/halverson/gainfolio/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txRecord is the wire shape of a transaction: one JSON object per line,
// amounts as plain numbers plus a shared currency field.
type txRecord struct {
	Side     Side            `json:"side"`
	Date     date.Date       `json:"date"`
	Symbol   string          `json:"symbol"`
	Exchange string          `json:"exchange,omitempty"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Fee      decimal.Decimal `json:"fee"`
	Currency string          `json:"currency"`
	Account  string          `json:"account,omitempty"`
	Memo     string          `json:"memo,omitempty"`
}

func (r txRecord) transaction() Transaction {
	return Transaction{
		Side:     r.Side,
		Date:     r.Date,
		Symbol:   r.Symbol,
		Exchange: r.Exchange,
		Quantity: r.Quantity,
		Price:    M(r.Price, r.Currency),
		Fee:      M(r.Fee, r.Currency),
		Account:  r.Account,
		Memo:     r.Memo,
	}
}

// DecodeLedger reads a stream of JSONL transaction records and returns a
// validated, sorted Ledger. Empty lines are skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}
		var rec txRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction: %w", line, err)
		}
		if err := ledger.Append(rec.transaction()); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical JSONL form,
// chronological order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for tx := range ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
