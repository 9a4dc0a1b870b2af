// Package shipping quotes shipping costs in USD and dispatches
// shipments, returning a tracking id.
package shipping

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
	"github.com/RaikyD/storefront-checkout/internal/money"
)

// Quoter implements flat-rate quoting. Stateless and safe for
// concurrent use.
type Quoter struct{}

func NewQuoter() *Quoter {
	return &Quoter{}
}

// GetQuote returns the USD shipping cost for the order. Flat rate per
// shipment; an empty cart ships for free.
func (q *Quoter) GetQuote(ctx context.Context, addr domain.Address, items []domain.CartItem) (money.Money, error) {
	if len(items) == 0 {
		return money.FromUSD(0, 0), nil
	}
	return money.FromUSD(8, 99), nil
}

// ShipOrder dispatches the shipment and returns a tracking id.
func (q *Quoter) ShipOrder(ctx context.Context, addr domain.Address, items []domain.CartItem) (string, error) {
	id := trackingID(fmt.Sprintf("%s, %s", addr.StreetAddress, addr.City))
	logger.Info("shipment dispatched", "tracking_id", id, "items", len(items))
	return id, nil
}

// trackingID produces ids shaped like "SB-39053K-812345Z", seeded from
// the shipping address so ids for one destination share a first letter.
func trackingID(salt string) string {
	var prefix byte = 'A'
	if len(salt) > 0 {
		prefix = 'A' + salt[0]%26
	}
	return fmt.Sprintf("%c%c-%d%c-%d%c",
		prefix,
		'A'+byte(rand.Intn(26)),
		10000+rand.Intn(90000),
		'A'+byte(rand.Intn(26)),
		100000+rand.Intn(900000),
		'A'+byte(rand.Intn(26)),
	)
}
