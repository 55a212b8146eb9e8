package finance

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// Ledger holds the transactions recorded for one user.
//
// Transactions are kept in insertion order. Date ordering is applied to
// sorted copies only: generating a report never reorders the stored slice.
type Ledger struct {
	name         string
	transactions []Transaction
}

// NewLedger creates an empty ledger owned by name.
func NewLedger(name string) *Ledger {
	return &Ledger{name: name, transactions: make([]Transaction, 0)}
}

// Name returns the name of the user owning this ledger.
func (l *Ledger) Name() string { return l.name }

// Append appends transactions to this ledger, preserving insertion order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction in insertion
// order. With no filter every transaction is yielded; otherwise a transaction
// is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByKind returns a predicate that filters transactions by kind.
func ByKind(kind Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == kind }
}

// Balance computes total income minus total expense. An empty ledger has a
// zero balance.
func (l *Ledger) Balance() Amount {
	var balance Amount
	for _, tx := range l.transactions {
		switch tx.What() {
		case Income:
			balance = balance.Add(tx.Amount())
		case Expense:
			balance = balance.Sub(tx.Amount())
		}
	}
	return balance
}

// TotalIncome computes the sum of all income amounts.
func (l *Ledger) TotalIncome() Amount { return l.total(Income) }

// TotalExpenses computes the sum of all expense amounts.
func (l *Ledger) TotalExpenses() Amount { return l.total(Expense) }

func (l *Ledger) total(kind Kind) Amount {
	var sum Amount
	for _, tx := range l.Transactions(ByKind(kind)) {
		sum = sum.Add(tx.Amount())
	}
	return sum
}

// sortedByDate returns a date-sorted copy of the transactions. The sort is
// stable: transactions on the same day keep their insertion order.
func (l *Ledger) sortedByDate() []Transaction {
	txs := slices.Clone(l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].When().Before(txs[j].When())
	})
	return txs
}

// OldestTransactionDate returns the date of the earliest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() Date {
	var oldest Date
	for _, tx := range l.transactions {
		if oldest.IsZero() || tx.When().Before(oldest) {
			oldest = tx.When()
		}
	}
	return oldest
}

// NewestTransactionDate returns the date of the latest transaction in the
// ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() Date {
	var newest Date
	for _, tx := range l.transactions {
		if newest.IsZero() || tx.When().After(newest) {
			newest = tx.When()
		}
	}
	return newest
}

// Report renders the ledger as text: a header, one line per transaction in
// non-decreasing date order, and the current balance.
func (l *Ledger) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report for %s:\n", l.name)
	b.WriteString("Transactions:\n")
	for _, tx := range l.sortedByDate() {
		b.WriteString(tx.String())
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Current Balance: %s", l.Balance())
	return b.String()
}
