package gainfolio

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/halverson/gainfolio/date"
)

// Side is a typed string identifying the direction of a trade.
type Side string

const (
	// Buy opens or extends a position.
	Buy Side = "buy"
	// Sell reduces a position, realizing a gain or a loss.
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown side: %q", s)
	}
}

// Transaction is a single immutable trade record. Ordering by date, with
// ties broken by insertion sequence, is significant: it drives FIFO lot
// matching.
type Transaction struct {
	Side     Side      // buy or sell
	Date     date.Date // day the trade settled
	Symbol   string    // ticker, e.g. "NVDA"
	Exchange string    // listing exchange, e.g. "NASDAQ"
	Quantity Quantity  // number of units traded, always positive
	Price    Money     // price per unit, in the transaction currency
	Fee      Money     // commission for the whole trade, same currency
	Account  string    // account-type tag, e.g. "TFSA"
	Memo     string    // optional note

	seq int // insertion sequence, stamped by Ledger.Append
}

// NewBuy creates a buy transaction.
func NewBuy(on date.Date, symbol, exchange string, quantity Quantity, price, fee Money, account string) Transaction {
	return Transaction{Side: Buy, Date: on, Symbol: symbol, Exchange: exchange,
		Quantity: quantity, Price: price, Fee: fee, Account: account}
}

// NewSell creates a sell transaction.
func NewSell(on date.Date, symbol, exchange string, quantity Quantity, price, fee Money, account string) Transaction {
	return Transaction{Side: Sell, Date: on, Symbol: symbol, Exchange: exchange,
		Quantity: quantity, Price: price, Fee: fee, Account: account}
}

// Currency returns the transaction currency, taken from the price.
func (t Transaction) Currency() string { return t.Price.Currency() }

// Validate checks a transaction for internal consistency.
func (t Transaction) Validate() error {
	var errs []error
	if _, err := ParseSide(string(t.Side)); err != nil {
		errs = append(errs, err)
	}
	if t.Symbol == "" {
		errs = append(errs, errors.New("symbol is missing"))
	}
	if t.Date.IsZero() {
		errs = append(errs, errors.New("date is missing"))
	}
	if !t.Quantity.IsPositive() {
		errs = append(errs, fmt.Errorf("quantity must be positive, got %s", t.Quantity))
	}
	if t.Price.IsNegative() {
		errs = append(errs, fmt.Errorf("price must not be negative, got %s", t.Price))
	}
	if t.Price.Currency() == "" {
		errs = append(errs, errors.New("price currency is missing"))
	}
	if t.Fee.IsNegative() {
		errs = append(errs, fmt.Errorf("fee must not be negative, got %s", t.Fee))
	}
	if fc := t.Fee.Currency(); fc != "" && fc != t.Price.Currency() {
		errs = append(errs, fmt.Errorf("fee currency %q differs from price currency %q", fc, t.Price.Currency()))
	}
	return errors.Join(errs...)
}

// MarshalJSON encodes the transaction as a single JSON object with a
// canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", t.Side)
	w.Append("date", t.Date)
	w.Append("symbol", t.Symbol)
	w.Optional("exchange", t.Exchange)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price.Amount())
	w.Optional("fee", t.Fee.Amount())
	w.Append("currency", t.Currency())
	w.Optional("account", t.Account)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Ledger holds the transaction log, always sorted by date with the
// original insertion order preserved within a day.
type Ledger struct {
	transactions []Transaction
	nextSeq      int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates the given transactions and inserts them into the
// ledger, keeping it sorted. It returns the first validation error, in
// which case the ledger is left unchanged.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("invalid %s of %q on %s: %w", tx.Side, tx.Symbol, tx.Date, err)
		}
	}
	for _, tx := range txs {
		tx.seq = l.nextSeq
		l.nextSeq++
		l.transactions = append(l.transactions, tx)
	}
	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i], l.transactions[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	})
	return nil
}

// Transactions returns an iterator over all transactions in chronological
// order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Symbols returns all traded symbols, sorted alphabetically.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]struct{})
	var symbols []string
	for _, tx := range l.transactions {
		if _, ok := seen[tx.Symbol]; !ok {
			seen[tx.Symbol] = struct{}{}
			symbols = append(symbols, tx.Symbol)
		}
	}
	sort.Strings(symbols)
	return symbols
}
