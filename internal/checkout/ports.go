package checkout

import (
	"context"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/money"
)

// Collaborator contracts consumed by the orchestrator. Transport is
// the adapter's concern; implementations must be safe for concurrent
// use across checkouts.

type CartStore interface {
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	EmptyCart(ctx context.Context, userID string) error
}

type ProductCatalog interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

type CurrencyConverter interface {
	Convert(m money.Money, to string) (money.Money, error)
}

type ShippingQuoter interface {
	GetQuote(ctx context.Context, addr domain.Address, items []domain.CartItem) (money.Money, error)
	ShipOrder(ctx context.Context, addr domain.Address, items []domain.CartItem) (string, error)
}

type PaymentProcessor interface {
	Charge(ctx context.Context, amount money.Money, card domain.CreditCardInfo) (string, error)
}

type Notifier interface {
	SendOrderConfirmation(ctx context.Context, email string, order domain.OrderResult) error
}
