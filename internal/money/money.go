package money

import (
	"errors"
	"fmt"
)

const nanosPerUnit = 1_000_000_000

// ErrCurrencyMismatch means two Money values with different currency
// codes were combined. That is a bug in currency propagation upstream,
// not a business condition; callers that cannot recover should go
// through Must.
var ErrCurrencyMismatch = errors.New("mismatching currency codes")

// Money is an exact-decimal amount: Units whole units of the currency
// plus Nanos billionths of a unit. Values are normalized so that
// |Nanos| < 1e9 and Units and Nanos never disagree in sign.
// Money is a value type; operations return new values.
type Money struct {
	CurrencyCode string `json:"currencyCode"`
	Units        int64  `json:"units"`
	Nanos        int32  `json:"nanos"`
}

// New returns a normalized Money.
func New(currencyCode string, units int64, nanos int32) Money {
	return Money{CurrencyCode: currencyCode, Units: units, Nanos: nanos}.normalize()
}

// FromUSD builds a USD amount from dollars and cents.
func FromUSD(dollars int64, cents int32) Money {
	return New("USD", dollars, cents*10_000_000)
}

// normalize carries overflowing nanos into units and makes the signs
// of the two fields agree. Value-preserving.
func (m Money) normalize() Money {
	units := m.Units + int64(m.Nanos)/nanosPerUnit
	nanos := m.Nanos % nanosPerUnit

	// Go's % keeps the dividend's sign, so a mixed-sign pair here
	// means units and nanos point in opposite directions.
	if units > 0 && nanos < 0 {
		units--
		nanos += nanosPerUnit
	} else if units < 0 && nanos > 0 {
		units++
		nanos -= nanosPerUnit
	}

	return Money{CurrencyCode: m.CurrencyCode, Units: units, Nanos: nanos}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Units == 0 && m.Nanos == 0
}

// Add returns a+b. Both operands must share a currency code.
func Add(a, b Money) (Money, error) {
	if a.CurrencyCode != b.CurrencyCode {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, a.CurrencyCode, b.CurrencyCode)
	}
	return Money{
		CurrencyCode: a.CurrencyCode,
		Units:        a.Units + b.Units,
		Nanos:        a.Nanos + b.Nanos,
	}.normalize(), nil
}

// Scale returns n*m. Scaling by 0 yields the zero value in m's currency.
func Scale(n uint32, m Money) Money {
	// nanos are widened to 64 bits before multiplying; quantity times
	// nanos can exceed int32 long before the amount itself is large.
	nanos := int64(n) * int64(m.Nanos)
	return Money{
		CurrencyCode: m.CurrencyCode,
		Units:        int64(n)*m.Units + nanos/nanosPerUnit,
		Nanos:        int32(nanos % nanosPerUnit),
	}.normalize()
}

// Sum folds Add over the slice. All elements must share a currency
// code. An empty slice yields the USD zero value; callers that care
// about the currency of an empty sum should not rely on this default.
func Sum(ms []Money) (Money, error) {
	if len(ms) == 0 {
		return Money{CurrencyCode: "USD"}, nil
	}
	tot := ms[0]
	for _, m := range ms[1:] {
		var err error
		tot, err = Add(tot, m)
		if err != nil {
			return Money{}, err
		}
	}
	return tot, nil
}

// Must unwraps the result of Add or Sum, panicking on error. Use it
// where a mismatch can only mean a programming error.
func Must(m Money, err error) Money {
	if err != nil {
		panic(err)
	}
	return m
}

// String formats the amount as "CODE units.nanos", e.g. "USD 23.500000000".
func (m Money) String() string {
	sign := ""
	units, nanos := m.Units, m.Nanos
	if units < 0 || nanos < 0 {
		sign = "-"
		if units < 0 {
			units = -units
		}
		if nanos < 0 {
			nanos = -nanos
		}
	}
	return fmt.Sprintf("%s %s%d.%09d", m.CurrencyCode, sign, units, nanos)
}
