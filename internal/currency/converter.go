// Package currency converts Money values between currencies using a
// static table of exchange rates relative to EUR.
package currency

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RaikyD/storefront-checkout/internal/logger"
	"github.com/RaikyD/storefront-checkout/internal/money"
)

// ErrUnsupportedCurrency means a currency code is missing from the
// rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

//go:embed conversion.json
var conversionData []byte

// Converter holds the rate table. It is immutable after construction
// and safe for concurrent use.
type Converter struct {
	rates map[string]float64
}

// NewConverter builds a converter from an already-parsed rate table
// (currency code -> units per EUR).
func NewConverter(rates map[string]float64) *Converter {
	return &Converter{rates: rates}
}

// Load builds a converter from the embedded rate table.
func Load() (*Converter, error) {
	var rates map[string]float64
	if err := json.Unmarshal(conversionData, &rates); err != nil {
		return nil, fmt.Errorf("parse conversion data: %w", err)
	}
	logger.Debug("conversion data loaded", "currencies", len(rates))
	return NewConverter(rates), nil
}

// SupportedCurrencies returns all configured currency codes. Order is
// not significant.
func (c *Converter) SupportedCurrencies() []string {
	codes := make([]string, 0, len(c.rates))
	for code := range c.rates {
		codes = append(codes, code)
	}
	return codes
}

// Convert re-denominates m into the target currency. The exchange-rate
// multiply goes through float64, so the result can be off by a nano;
// round-tripping is not bit-exact.
func (c *Converter) Convert(m money.Money, to string) (money.Money, error) {
	fromRate, ok := c.rates[m.CurrencyCode]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, m.CurrencyCode)
	}
	toRate, ok := c.rates[to]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, to)
	}

	nanos := (float64(m.Units)*1e9 + float64(m.Nanos)) * (toRate / fromRate)
	total := int64(nanos)

	return money.New(to, total/1_000_000_000, int32(total%1_000_000_000)), nil
}
