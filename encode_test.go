package finance

import (
	"bytes"
	"strings"
	"testing"
)

// testRegistry builds the registry used by the encoding tests: two profiles,
// one of them empty, with transactions inserted in date order.
func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	if err := reg.AddUser(NewLedger("Alice")); err != nil {
		t.Fatalf("AddUser returned an unexpected error: %v", err)
	}
	john := NewLedger("John")
	john.Append(
		tx(t, Income, 1000, "2024-08-01", "Salary"),
		tx(t, Expense, 200, "2024-08-05", "Utilities"),
	)
	if err := reg.AddUser(john); err != nil {
		t.Fatalf("AddUser returned an unexpected error: %v", err)
	}
	return reg
}

func TestEncodeRegistry(t *testing.T) {
	reg := testRegistry(t)

	var buf bytes.Buffer
	if err := EncodeRegistry(&buf, reg); err != nil {
		t.Fatalf("EncodeRegistry returned an unexpected error: %v", err)
	}

	want := `{
    "Alice": {
        "transactions": []
    },
    "John": {
        "transactions": [
            {
                "amount": 1000,
                "date": "2024-08-01",
                "description": "Salary",
                "type": "Income"
            },
            {
                "amount": 200,
                "date": "2024-08-05",
                "description": "Utilities",
                "type": "Expense"
            }
        ]
    }
}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeRegistry produced incorrect output.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestEncodeRegistry_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeRegistry(&buf, NewRegistry()); err != nil {
		t.Fatalf("EncodeRegistry returned an unexpected error: %v", err)
	}
	if got, want := buf.String(), "{}\n"; got != want {
		t.Errorf("EncodeRegistry = %q, want %q", got, want)
	}
}

func TestDecodeRegistry(t *testing.T) {
	doc := `{
		"John": {
			"transactions": [
				{"amount": 1000, "date": "2024-08-01", "description": "Salary", "type": "Income"},
				{"amount": 200, "date": "2024-08-05", "description": "Utilities", "type": "Expense"}
			]
		}
	}`

	reg, err := DecodeRegistry(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeRegistry returned an unexpected error: %v", err)
	}

	ledger, err := reg.GetUser("John")
	if err != nil {
		t.Fatalf("GetUser returned an unexpected error: %v", err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("decoded ledger holds %d transactions, want 2", ledger.Len())
	}
	if got, want := ledger.Balance().String(), "$800.00"; got != want {
		t.Errorf("Balance() = %s, want %s", got, want)
	}
}

func TestDecodeRegistry_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `John owes me money`},
		{name: "malformed date", doc: `{"John":{"transactions":[{"amount":10,"date":"08/01/2024","description":"x","type":"Income"}]}}`},
		{name: "unknown kind", doc: `{"John":{"transactions":[{"amount":10,"date":"2024-08-01","description":"x","type":"Loan"}]}}`},
		{name: "non positive amount", doc: `{"John":{"transactions":[{"amount":-10,"date":"2024-08-01","description":"x","type":"Expense"}]}}`},
		{name: "empty user name", doc: `{"":{"transactions":[]}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRegistry(strings.NewReader(tc.doc)); err == nil {
				t.Errorf("DecodeRegistry accepted %s, want error", tc.doc)
			}
		})
	}
}

// Saving and reloading a registry must reproduce identical balances and
// report text for every user.
func TestEncodeDecodeRegistry_RoundTrip(t *testing.T) {
	reg := testRegistry(t)

	var buf bytes.Buffer
	if err := EncodeRegistry(&buf, reg); err != nil {
		t.Fatalf("EncodeRegistry returned an unexpected error: %v", err)
	}
	loaded, err := DecodeRegistry(&buf)
	if err != nil {
		t.Fatalf("DecodeRegistry returned an unexpected error: %v", err)
	}

	if loaded.Len() != reg.Len() {
		t.Fatalf("round trip changed user count: got %d, want %d", loaded.Len(), reg.Len())
	}
	for want := range reg.Users() {
		got, err := loaded.GetUser(want.Name())
		if err != nil {
			t.Fatalf("GetUser(%q) returned an unexpected error: %v", want.Name(), err)
		}
		if !got.Balance().Equal(want.Balance()) {
			t.Errorf("balance for %q changed: got %s, want %s", want.Name(), got.Balance(), want.Balance())
		}
		if got.Report() != want.Report() {
			t.Errorf("report for %q changed.\nGot:\n%s\nWant:\n%s", want.Name(), got.Report(), want.Report())
		}
	}
}
