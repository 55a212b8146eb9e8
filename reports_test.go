package finance

import "testing"

func TestNewSummary(t *testing.T) {
	reg := NewRegistry()

	john := NewLedger("John")
	john.Append(
		tx(t, Income, 1000, "2024-08-01", "Salary"),
		tx(t, Expense, 200, "2024-08-05", "Utilities"),
	)
	alice := NewLedger("Alice")
	alice.Append(tx(t, Income, 300, "2024-07-15", "Refund"))
	for _, ledger := range []*Ledger{john, alice} {
		if err := reg.AddUser(ledger); err != nil {
			t.Fatalf("AddUser returned an unexpected error: %v", err)
		}
	}

	s := NewSummary(reg)

	if len(s.Users) != 2 {
		t.Fatalf("summary holds %d rows, want 2", len(s.Users))
	}
	// Rows follow sorted user name order.
	if s.Users[0].Name != "Alice" || s.Users[1].Name != "John" {
		t.Errorf("summary rows = %q, %q, want Alice, John", s.Users[0].Name, s.Users[1].Name)
	}

	row := s.Users[1]
	if row.Transactions != 2 {
		t.Errorf("John row holds %d transactions, want 2", row.Transactions)
	}
	if row.FirstActivity != MustParse("2024-08-01") || row.LastActivity != MustParse("2024-08-05") {
		t.Errorf("John activity range = %v..%v, want 2024-08-01..2024-08-05", row.FirstActivity, row.LastActivity)
	}
	if got, want := row.Balance.String(), "$800.00"; got != want {
		t.Errorf("John balance = %s, want %s", got, want)
	}

	if got, want := s.TotalIncome.String(), "$1300.00"; got != want {
		t.Errorf("TotalIncome = %s, want %s", got, want)
	}
	if got, want := s.TotalExpenses.String(), "$200.00"; got != want {
		t.Errorf("TotalExpenses = %s, want %s", got, want)
	}
	if got, want := s.TotalBalance.String(), "$1100.00"; got != want {
		t.Errorf("TotalBalance = %s, want %s", got, want)
	}
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(NewRegistry())
	if len(s.Users) != 0 {
		t.Errorf("empty registry summary holds %d rows, want 0", len(s.Users))
	}
	if !s.TotalBalance.IsZero() {
		t.Errorf("empty registry TotalBalance = %s, want $0.00", s.TotalBalance)
	}
}
