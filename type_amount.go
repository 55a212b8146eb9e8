package finance

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value in the tracker's display currency.
//
// Arithmetic is exact: the value is carried as a decimal, never a float.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic(fmt.Sprintf("unsupported numeric type %T", value))
	}
}

// ParseAmount parses a decimal amount from its string representation.
func ParseAmount(str string) (Amount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(str))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return Amount{value: value}, nil
}

// displayCurrency returns the single currency used for rendering amounts.
// Multi-currency bookkeeping is out of scope.
func displayCurrency() money.Currency {
	// to get a never nil currency, go through the Money constructor.
	return *money.New(0, money.USD).Currency()
}

// String renders the amount with the currency symbol and exactly as many
// decimals as the currency's minor unit, e.g. "$1000.00".
func (a Amount) String() string {
	cur := displayCurrency()
	return cur.Grapheme + a.value.StringFixed(int32(cur.Fraction))
}

func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsPositive() bool    { return a.value.IsPositive() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// roundedValue returns the value rounded to the currency's minor unit, the
// precision used when persisting amounts.
func (a Amount) roundedValue() decimal.Decimal {
	return a.value.Round(int32(displayCurrency().Fraction))
}
