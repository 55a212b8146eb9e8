package finance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerDocument is the persisted shape of one ledger: a single
// "transactions" array. The owner name is the key in the enclosing object.
type ledgerDocument struct {
	Transactions []Transaction `json:"transactions"`
}

// EncodeRegistry writes the whole registry as a single JSON document: an
// object mapping each user name to its list of transactions. Users are
// written in sorted name order, transactions in insertion order, so encoding
// the same registry twice produces identical bytes.
func EncodeRegistry(w io.Writer, reg *Registry) error {
	var jw jsonObjectWriter
	for ledger := range reg.Users() {
		jw.Append(ledger.Name(), ledgerDocument{Transactions: ledger.transactions})
	}
	data, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode registry: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "    "); err != nil {
		return fmt.Errorf("could not format registry document: %w", err)
	}
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("could not write registry: %w", err)
	}
	return nil
}

// DecodeRegistry reads a registry from a JSON document produced by
// EncodeRegistry. Every stored transaction is validated on the way in: a
// malformed date, kind, or non-positive amount is a decode error, so a
// loaded registry can always generate its reports.
func DecodeRegistry(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read registry document: %w", err)
	}

	var doc map[string]struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not decode registry document: %w", err)
	}

	reg := NewRegistry()
	for name, payload := range doc {
		ledger := NewLedger(name)
		for i, raw := range payload.Transactions {
			var tx Transaction
			if err := json.Unmarshal(raw, &tx); err != nil {
				return nil, fmt.Errorf("invalid transaction %d for user %q: %w", i, name, err)
			}
			ledger.Append(tx)
		}
		if err := reg.AddUser(ledger); err != nil {
			return nil, fmt.Errorf("could not load profile %q: %w", name, err)
		}
	}
	return reg, nil
}
