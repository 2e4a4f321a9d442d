package troop

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currency is the only currency the council operates in.
const currency = money.USD

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money represents a dollar amount. Its zero value is $0.00.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD returns an amount of dollars.
func USD[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseDollars parses a currency-formatted amount such as "$1,234.50".
// Blank strings are $0.00.
func ParseDollars(s string) (Money, error) {
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return Money{}, nil
	}
	// accounting exports write negative amounts as (12.00)
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = "-" + clean[1:len(clean)-1]
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := money.GetCurrency(currency)
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) Neg() Money { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(packages int) Money { return Money{value: m.value.Mul(newDecimal(packages))} }

// NonNegative returns m, or $0.00 if m is negative.
func (m Money) NonNegative() Money {
	if m.IsNegative() {
		return Money{}
	}
	return m
}

// MarshalJSON writes the amount rounded to cents.
func (m Money) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("currency", currency)
	w.Append("amount", m.value.Round(int32(money.GetCurrency(currency).Fraction)))
	return w.MarshalJSON()
}

// UnmarshalJSON reads the amount written by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var v struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := decodeJSON(data, &v); err != nil {
		return err
	}
	m.value = v.Amount
	return nil
}
