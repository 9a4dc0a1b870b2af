// Package checkout runs the order-placement saga: cart fetch, price
// localization, shipping quote, payment, shipment, cart clear and
// confirmation, in that order. Nothing after a failed step runs, and
// there is no compensation: a shipping failure after a successful
// charge is reported, not refunded.
package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
	"github.com/RaikyD/storefront-checkout/internal/money"
)

type Service struct {
	cart      CartStore
	catalog   ProductCatalog
	converter CurrencyConverter
	shipping  ShippingQuoter
	payment   PaymentProcessor
	notifier  Notifier
}

func NewService(
	cart CartStore,
	catalog ProductCatalog,
	converter CurrencyConverter,
	shipping ShippingQuoter,
	payment PaymentProcessor,
	notifier Notifier,
) *Service {
	return &Service{
		cart:      cart,
		catalog:   catalog,
		converter: converter,
		shipping:  shipping,
		payment:   payment,
		notifier:  notifier,
	}
}

type PlaceOrderRequest struct {
	UserID       string                `json:"userId"`
	UserCurrency string                `json:"userCurrency"`
	Address      domain.Address        `json:"address"`
	Email        string                `json:"email"`
	CreditCard   domain.CreditCardInfo `json:"creditCard"`
}

// orderPrep is the transient state assembled before money moves.
type orderPrep struct {
	orderItems            []domain.OrderItem
	cartItems             []domain.CartItem
	shippingCostLocalized money.Money
}

// PlaceOrder runs one checkout. On any error before shipment nothing
// durable has happened and the pipeline stops; cart clearing and the
// confirmation email are best effort and cannot fail the order.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (domain.OrderResult, error) {
	logger.Info("placing order", "user_id", req.UserID, "user_currency", req.UserCurrency)

	orderID := uuid.NewString()
	prep, err := s.prepareOrder(ctx, req.UserID, req.UserCurrency, req.Address)
	if err != nil {
		return domain.OrderResult{}, err
	}

	// Every summand is already in the user's currency; a mismatch here
	// is a conversion bug, and Must turns it into a loud failure.
	total := money.Money{CurrencyCode: req.UserCurrency}
	total = money.Must(money.Add(total, prep.shippingCostLocalized))
	for _, it := range prep.orderItems {
		total = money.Must(money.Add(total, money.Scale(it.Item.Quantity, it.Cost)))
	}

	txID, err := s.payment.Charge(ctx, total, req.CreditCard)
	if err != nil {
		return domain.OrderResult{}, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}
	logger.Info("payment went through", "transaction_id", txID, "total", total.String())

	trackingID, err := s.shipping.ShipOrder(ctx, req.Address, prep.cartItems)
	if err != nil {
		// payment already succeeded; there is no automatic refund
		return domain.OrderResult{}, fmt.Errorf("%w: %v", ErrShippingFailed, err)
	}

	if err := s.cart.EmptyCart(ctx, req.UserID); err != nil {
		logger.Warn("failed to empty cart after shipment", "user_id", req.UserID, "err", err)
	}

	order := domain.OrderResult{
		OrderID:            orderID,
		ShippingTrackingID: trackingID,
		ShippingCost:       prep.shippingCostLocalized,
		ShippingAddress:    req.Address,
		Items:              prep.orderItems,
	}

	if err := s.notifier.SendOrderConfirmation(ctx, req.Email, order); err != nil {
		logger.Warn("failed to send order confirmation", "email", req.Email, "err", err)
	} else {
		logger.Info("order confirmation sent", "email", req.Email)
	}

	return order, nil
}

func (s *Service) prepareOrder(ctx context.Context, userID, userCurrency string, addr domain.Address) (orderPrep, error) {
	cart, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		return orderPrep{}, fmt.Errorf("%w: %v", ErrCartUnavailable, err)
	}

	orderItems, err := s.prepOrderItems(ctx, cart.Items, userCurrency)
	if err != nil {
		return orderPrep{}, err
	}

	quoteUSD, err := s.shipping.GetQuote(ctx, addr, cart.Items)
	if err != nil {
		return orderPrep{}, fmt.Errorf("%w: quote: %v", ErrShippingFailed, err)
	}
	localized, err := s.converter.Convert(quoteUSD, userCurrency)
	if err != nil {
		return orderPrep{}, fmt.Errorf("convert shipping cost: %w", err)
	}

	return orderPrep{
		orderItems:            orderItems,
		cartItems:             cart.Items,
		shippingCostLocalized: localized,
	}, nil
}

// prepOrderItems resolves each cart item's product and localizes its
// unit price. Lookups are independent, so they run concurrently; any
// failure fails the whole batch.
func (s *Service) prepOrderItems(ctx context.Context, items []domain.CartItem, userCurrency string) ([]domain.OrderItem, error) {
	out := make([]domain.OrderItem, len(items))

	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			product, err := s.catalog.GetProduct(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrProductLookup, item.ProductID, err)
			}
			cost, err := s.converter.Convert(product.PriceUSD, userCurrency)
			if err != nil {
				return fmt.Errorf("convert price of %s: %w", item.ProductID, err)
			}
			out[i] = domain.OrderItem{Item: item, Cost: cost}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
