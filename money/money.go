package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/bankcore"
)

// scale is the fixed number of fractional digits carried by every Money value.
const scale = 2

// Money is an exact decimal amount normalized to two fractional digits.
//
// The zero value is 0.00 and ready to use. Money values are immutable;
// arithmetic methods return new values and re-round to scale 2, half-up.
type Money struct {
	value decimal.Decimal
}

// Zero returns the 0.00 amount.
func Zero() Money {
	return Money{}
}

// FromString parses a decimal string such as "10.005" and rounds it to two
// fractional digits, half-up. It fails with an INVALID_AMOUNT domain error
// when the input is not numeric.
func FromString(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, bankcore.NewDomainError(bankcore.ErrorInvalidAmount, "amount", "amount must be numeric")
	}

	return Money{value: d.Round(scale)}, nil
}

// MustFromString parses like FromString and panics on invalid input.
// Use it only for compile-time constants and test fixtures.
func MustFromString(s string) Money {
	m, err := FromString(s)
	if err != nil {
		panic(err)
	}

	return m
}

// FromFloat converts a float64 to Money, rounding to two fractional
// digits, half-up.
func FromFloat(f float64) Money {
	return Money{value: decimal.NewFromFloat(f).Round(scale)}
}

// Add returns m + other, re-rounded to scale 2.
func (m Money) Add(other Money) Money {
	return Money{value: m.value.Add(other.value).Round(scale)}
}

// Sub returns m - other, re-rounded to scale 2.
func (m Money) Sub(other Money) Money {
	return Money{value: m.value.Sub(other.value).Round(scale)}
}

// Cmp compares m and other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.value.Cmp(other.value)
}

// Equal reports whether m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.value.Equal(other.value)
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.value.GreaterThan(other.value)
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.value.LessThan(other.value)
}

// IsNegative reports whether m is below zero.
func (m Money) IsNegative() bool {
	return m.value.IsNegative()
}

// IsPositive reports whether m is above zero.
func (m Money) IsPositive() bool {
	return m.value.IsPositive()
}

// IsZero reports whether m is exactly zero.
func (m Money) IsZero() bool {
	return m.value.IsZero()
}

// String returns the display form with exactly two fractional digits,
// e.g. "1500.00".
func (m Money) String() string {
	return m.value.StringFixed(scale)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.value
}

// MarshalJSON encodes the amount as a JSON string with two fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON decodes a JSON string or number into a Money value,
// rounding to two fractional digits.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)

	parsed, err := FromString(s)
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}
