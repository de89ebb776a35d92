package gainfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/halverson/gainfolio/date"
	"github.com/shopspring/decimal"
)

// This file imports externally produced snapshots: daily exchange-rate
// documents and price quotes. Fetching them is a collaborator's job; the
// core only parses frozen files.

// jsonValue extracts a single value out of a decoded JSON document.
func jsonValue(jobj any, path string) (any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

// jsonString is jsonValue for string leaves.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonValue(jobj, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}

// ReadRateDocument parses one exchange-rate document, in the shape rate
// providers like exchangerate-api publish:
//
//	{"base": "USD", "date": "2025-08-29", "rates": {"CAD": 1.37, ...}}
//
// Every rate is recorded in the table under (base, quote) on the
// document's date.
func (t *RateTable) ReadRateDocument(doc []byte) error {
	var jobj any
	if err := json.Unmarshal(doc, &jobj); err != nil {
		return fmt.Errorf("could not decode rate document: %w", err)
	}
	base, err := jsonString(jobj, "$.base")
	if err != nil {
		return err
	}
	day, err := jsonString(jobj, "$.date")
	if err != nil {
		return err
	}
	on, err := date.Parse(day)
	if err != nil {
		return err
	}
	jval, err := jsonValue(jobj, "$.rates")
	if err != nil {
		return err
	}
	rates, ok := jval.(map[string]any)
	if !ok {
		return fmt.Errorf("value at %q is not an object: %v", "$.rates", jval)
	}
	for quote, jrate := range rates {
		rate, ok := jrate.(float64)
		if !ok {
			return fmt.Errorf("rate %s/%s is not a number: %v", base, quote, jrate)
		}
		t.Append(base, quote, on, decimal.NewFromFloat(rate))
	}
	return nil
}

// DecodeRates reads a stream of JSONL exchange-rate documents, one per
// line, into a fresh RateTable.
func DecodeRates(r io.Reader) (*RateTable, error) {
	table := NewRateTable()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		if err := table.ReadRateDocument(scanner.Bytes()); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read rates: %w", err)
	}
	return table, nil
}

// quoteRecord is the wire shape of a price quote.
type quoteRecord struct {
	Symbol   string          `json:"symbol"`
	Exchange string          `json:"exchange,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
	Date     date.Date       `json:"date"`
}

// DecodePrices reads a stream of JSONL price quotes into a fresh
// PriceTable. A later quote for the same (symbol, exchange) replaces an
// earlier one.
func DecodePrices(r io.Reader) (*PriceTable, error) {
	table := NewPriceTable()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec quoteRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("line %d: could not decode quote: %w", line, err)
		}
		if rec.Symbol == "" || rec.Currency == "" {
			return nil, fmt.Errorf("line %d: quote needs a symbol and a currency", line)
		}
		table.Add(Quote{
			Symbol:   rec.Symbol,
			Exchange: rec.Exchange,
			Price:    M(rec.Price, rec.Currency),
			On:       rec.Date,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read prices: %w", err)
	}
	return table, nil
}
