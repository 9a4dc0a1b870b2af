// Package email sends order confirmations. The orchestrator treats
// confirmation failures as non-fatal, so notifiers only need to report
// errors, not guarantee delivery.
package email

import (
	"context"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
)

// LogNotifier records the confirmation in the service log. Used when
// no delivery channel is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendOrderConfirmation(ctx context.Context, email string, order domain.OrderResult) error {
	logger.Info("order confirmation",
		"email", email,
		"order_id", order.OrderID,
		"tracking_id", order.ShippingTrackingID,
		"items", len(order.Items),
		"shipping_cost", order.ShippingCost.String(),
	)
	return nil
}
