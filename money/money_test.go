package money

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/bankcore"
)

// ---------------------------------------------------------------------------
// FromString -- parsing and half-up rounding
// ---------------------------------------------------------------------------

func TestFromString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain integer", input: "10", expected: "10.00"},
		{name: "two digits kept", input: "10.25", expected: "10.25"},
		{name: "half rounds up", input: "10.005", expected: "10.01"},
		{name: "below half rounds down", input: "10.004", expected: "10.00"},
		{name: "above half rounds up", input: "10.006", expected: "10.01"},
		{name: "negative half rounds away from zero", input: "-10.005", expected: "-10.01"},
		{name: "surrounding whitespace", input: "  42.1  ", expected: "42.10"},
		{name: "non-numeric", input: "ten dollars", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.input)

			if tt.wantErr {
				require.Error(t, err)

				var domainErr bankcore.DomainError
				require.True(t, errors.As(err, &domainErr))
				assert.Equal(t, bankcore.ErrorInvalidAmount, domainErr.Code)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}

func TestFromString_RoundingIsIdempotent(t *testing.T) {
	once := MustFromString("10.005")

	again, err := FromString(once.String())
	require.NoError(t, err)

	assert.True(t, once.Equal(again), "round(round(x)) must equal round(x)")
	assert.Equal(t, "10.01", again.String())
}

func TestFromFloat(t *testing.T) {
	assert.Equal(t, "99.99", FromFloat(99.99).String())
	assert.Equal(t, "0.00", FromFloat(0).String())
	assert.Equal(t, "1.50", FromFloat(1.5).String())
}

// ---------------------------------------------------------------------------
// Arithmetic and comparisons
// ---------------------------------------------------------------------------

func TestArithmetic(t *testing.T) {
	a := MustFromString("100.10")
	b := MustFromString("0.05")

	assert.Equal(t, "100.15", a.Add(b).String())
	assert.Equal(t, "100.05", a.Sub(b).String())
	assert.Equal(t, "0.00", b.Sub(b).String())
}

func TestComparisons(t *testing.T) {
	small := MustFromString("1.00")
	big := MustFromString("2.00")

	assert.Equal(t, -1, small.Cmp(big))
	assert.Equal(t, 1, big.Cmp(small))
	assert.Equal(t, 0, small.Cmp(MustFromString("1")))

	assert.True(t, big.GreaterThan(small))
	assert.True(t, small.LessThan(big))
	assert.True(t, small.Equal(MustFromString("1.000")))
}

func TestSignPredicates(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsNegative())
	assert.False(t, Zero().IsPositive())

	assert.True(t, MustFromString("0.01").IsPositive())
	assert.True(t, MustFromString("-0.01").IsNegative())
}

func TestZeroValueIsUsable(t *testing.T) {
	var m Money

	assert.Equal(t, "0.00", m.String())
	assert.True(t, m.Equal(Zero()))
	assert.Equal(t, "5.00", m.Add(MustFromString("5")).String())
}

// ---------------------------------------------------------------------------
// JSON
// ---------------------------------------------------------------------------

func TestJSONRoundTrip(t *testing.T) {
	original := MustFromString("1234.56")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"1234.56"`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded))
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	var m Money

	err := json.Unmarshal([]byte(`"not-a-number"`), &m)
	require.Error(t, err)

	var domainErr bankcore.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, bankcore.ErrorInvalidAmount, domainErr.Code)
}
