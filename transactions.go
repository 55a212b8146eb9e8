package finance

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind is a typed tag distinguishing transaction polarity.
type Kind string

// The two transaction kinds. The set is closed: the kind carries no sign,
// an Expense subtracts its (positive) amount from the balance.
const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

func (k Kind) String() string { return string(k) }

// Transaction is an immutable income or expense record. There is no update
// operation: once constructed a transaction never changes.
type Transaction struct {
	amount      Amount
	date        Date
	description string
	kind        Kind
}

// NewTransaction creates a transaction. The amount must be strictly positive
// regardless of kind, and the date must be set. Validation happens here, at
// ingestion, so that reports can never fail on malformed stored data.
func NewTransaction(kind Kind, amount Amount, day Date, description string) (Transaction, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Transaction{}, err
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%s amount must be positive, got %s", kind, amount)
	}
	if day.IsZero() {
		return Transaction{}, fmt.Errorf("%s transaction %q has no date", kind, description)
	}
	return Transaction{amount: amount, date: day, description: description, kind: kind}, nil
}

// Amount returns the transaction amount, always positive.
func (t Transaction) Amount() Amount { return t.amount }

// When returns the date on which the transaction occurred.
func (t Transaction) When() Date { return t.date }

// What returns the kind of the transaction.
func (t Transaction) What() Kind { return t.kind }

// Description returns the free text attached to the transaction.
func (t Transaction) Description() string { return t.description }

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.kind == o.kind && t.date == o.date &&
		t.description == o.description && t.amount.Equal(o.amount)
}

// String renders the transaction as it appears in reports.
func (t Transaction) String() string {
	return fmt.Sprintf("%s - %s: %s", t.date, t.description, t.amount)
}

// MarshalJSON implements the json.Marshaler interface for Transaction,
// with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("amount", t.amount.roundedValue())
	w.Append("date", t.date)
	w.Append("description", t.description)
	w.Append("type", t.kind)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// Stored records go through the same validation as new ones, so a malformed
// date, kind, or amount surfaces at load time, not at report time.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Amount      decimal.Decimal `json:"amount"`
		Date        Date            `json:"date"`
		Description string          `json:"description"`
		Type        Kind            `json:"type"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	tx, err := NewTransaction(temp.Type, A(temp.Amount), temp.Date, temp.Description)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}

var _ json.Marshaler = Transaction{}
var _ json.Unmarshaler = (*Transaction)(nil)
