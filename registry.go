package finance

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrUserNotFound is returned when an operation references an unknown user.
var ErrUserNotFound = errors.New("user profile not found")

// Registry is the collection of all ledgers, keyed by user name. The map key
// always equals the ledger's own name.
type Registry struct {
	profiles map[string]*Ledger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: make(map[string]*Ledger)}
}

// AddUser inserts a ledger, replacing any previous ledger with the same name.
func (r *Registry) AddUser(l *Ledger) error {
	if l == nil {
		return fmt.Errorf("cannot add a nil ledger")
	}
	if l.Name() == "" {
		return fmt.Errorf("cannot add a ledger with an empty name")
	}
	r.profiles[l.Name()] = l
	return nil
}

// RemoveUser deletes the ledger for name, with all its transactions.
func (r *Registry) RemoveUser(name string) error {
	if _, ok := r.profiles[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	delete(r.profiles, name)
	return nil
}

// GetUser returns the ledger for name.
func (r *Registry) GetUser(name string) (*Ledger, error) {
	l, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUserNotFound, name)
	}
	return l, nil
}

// Len returns the number of user ledgers in the registry.
func (r *Registry) Len() int { return len(r.profiles) }

// Users iterates over the ledgers in sorted user name order.
func (r *Registry) Users() iter.Seq[*Ledger] {
	return func(yield func(*Ledger) bool) {
		names := slices.Collect(maps.Keys(r.profiles))
		slices.Sort(names)
		for _, name := range names {
			if !yield(r.profiles[name]) {
				return
			}
		}
	}
}

// Record adds one transaction for user, creating the ledger on first
// reference. The sign of amount selects the kind: a positive amount is
// income, a negative amount is an expense recorded with its magnitude.
// A zero amount is rejected.
func (r *Registry) Record(user string, amount Amount, day Date, description string) (Transaction, error) {
	kind := Income
	if amount.IsNegative() {
		kind, amount = Expense, amount.Neg()
	}
	tx, err := NewTransaction(kind, amount, day, description)
	if err != nil {
		return Transaction{}, err
	}

	ledger, err := r.GetUser(user)
	if errors.Is(err, ErrUserNotFound) {
		ledger = NewLedger(user)
		if err := r.AddUser(ledger); err != nil {
			return Transaction{}, err
		}
	} else if err != nil {
		return Transaction{}, err
	}

	ledger.Append(tx)
	return tx, nil
}
