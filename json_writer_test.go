package finance

import "testing"

func TestJsonObjectWriter_KeyOrder(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", 1)

	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned an unexpected error: %v", err)
	}
	// Keys stay in append order, not alphabetical order.
	if got, want := string(data), `{"b":2,"a":1}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned an unexpected error: %v", err)
	}
	if got, want := string(data), `{}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Error(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions cannot be marshaled
	w.Append("good", 1)

	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON should report the failed append")
	}
}
