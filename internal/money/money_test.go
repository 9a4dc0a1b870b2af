package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decimal collapses a Money into a single nano count for
// value-preservation checks.
func decimal(m Money) int64 {
	return m.Units*1_000_000_000 + int64(m.Nanos)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		units     int64
		nanos     int32
		wantUnits int64
		wantNanos int32
	}{
		{"already normal", 2, 500_000_000, 2, 500_000_000},
		{"nanos overflow", 1, 1_500_000_000, 2, 500_000_000},
		{"nanos double overflow", 0, 2_000_000_001, 2, 1},
		{"negative overflow", -1, -1_500_000_000, -2, -500_000_000},
		{"mixed positive units", 1, -500_000_000, 0, 500_000_000},
		{"mixed negative units", -1, 500_000_000, 0, -500_000_000},
		{"mixed large", 3, -2_100_000_000, 0, 900_000_000},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Money{CurrencyCode: "USD", Units: tt.units, Nanos: tt.nanos}
			got := New("USD", tt.units, tt.nanos)

			assert.Equal(t, tt.wantUnits, got.Units)
			assert.Equal(t, tt.wantNanos, got.Nanos)
			assert.Equal(t, decimal(in), decimal(got), "normalize must preserve the value")

			// invariant: |nanos| < 1e9, signs agree when both non-zero
			assert.Less(t, abs32(got.Nanos), int32(1_000_000_000))
			if got.Units != 0 && got.Nanos != 0 {
				assert.True(t, (got.Units > 0) == (got.Nanos > 0), "sign mismatch after normalize")
			}
		})
	}
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func TestAdd(t *testing.T) {
	a := New("USD", 1, 750_000_000)
	b := New("USD", 2, 500_000_000)
	c := New("USD", 0, 900_000_000)

	ab, err := Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, New("USD", 4, 250_000_000), ab)

	// commutative
	ba := Must(Add(b, a))
	assert.Equal(t, ab, ba)

	// associative
	left := Must(Add(Must(Add(a, b)), c))
	right := Must(Add(a, Must(Add(b, c))))
	assert.Equal(t, left, right)
}

func TestAddCurrencyMismatch(t *testing.T) {
	_, err := Add(New("USD", 1, 0), New("EUR", 1, 0))
	require.ErrorIs(t, err, ErrCurrencyMismatch)

	assert.Panics(t, func() {
		Must(Add(New("USD", 1, 0), New("JPY", 1, 0)))
	})
}

func TestScale(t *testing.T) {
	m := New("EUR", 10, 250_000_000)

	assert.Equal(t, Money{CurrencyCode: "EUR"}, Scale(0, m))
	assert.Equal(t, m, Scale(1, m))
	assert.Equal(t, New("EUR", 20, 500_000_000), Scale(2, m))

	// nanos overflow carries into units
	assert.Equal(t, New("USD", 4, 0), Scale(5, New("USD", 0, 800_000_000)))
}

func TestSum(t *testing.T) {
	ms := []Money{
		New("USD", 1, 900_000_000),
		New("USD", 2, 200_000_000),
		New("USD", 0, 900_000_000),
	}
	got, err := Sum(ms)
	require.NoError(t, err)
	assert.Equal(t, New("USD", 5, 0), got)

	_, err = Sum([]Money{New("USD", 1, 0), New("EUR", 1, 0)})
	require.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestSumEmpty(t *testing.T) {
	got, err := Sum(nil)
	require.NoError(t, err)
	// The currency of an empty sum is a documented default, not a
	// contract; only the zero value itself is asserted here.
	assert.True(t, got.IsZero())
}

func TestFromUSD(t *testing.T) {
	m := FromUSD(10, 0)
	assert.Equal(t, New("USD", 10, 0), m)

	m = FromUSD(3, 50)
	assert.Equal(t, New("USD", 3, 500_000_000), m)

	// cents beyond a dollar carry over
	m = FromUSD(1, 150)
	assert.Equal(t, New("USD", 2, 500_000_000), m)
}

func TestString(t *testing.T) {
	assert.Equal(t, "USD 23.500000000", New("USD", 23, 500_000_000).String())
	assert.Equal(t, "EUR -0.250000000", New("EUR", 0, -250_000_000).String())
}
