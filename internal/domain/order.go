package domain

import "github.com/RaikyD/storefront-checkout/internal/money"

// CartItem is a product reference plus quantity, owned by the cart
// store keyed by user id.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  uint32 `json:"quantity"`
}

// Cart is a user's cart snapshot.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

// Address is opaque to checkout beyond being handed to the shipping
// quoter.
type Address struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	ZipCode       int32  `json:"zipCode"`
}

// CreditCardInfo is passed through to the payment processor and must
// never be logged in cleartext.
type CreditCardInfo struct {
	Number          string `json:"creditCardNumber"`
	CVV             int32  `json:"creditCardCvv"`
	ExpirationYear  int32  `json:"creditCardExpirationYear"`
	ExpirationMonth int32  `json:"creditCardExpirationMonth"`
}

// LastFour returns the card number's last four digits for logging.
func (c CreditCardInfo) LastFour() string {
	if len(c.Number) < 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// OrderItem is a cart item annotated with its per-unit cost in the
// user's currency.
type OrderItem struct {
	Item CartItem    `json:"item"`
	Cost money.Money `json:"cost"`
}

// OrderResult is the sole artifact of a successful checkout.
type OrderResult struct {
	OrderID            string      `json:"orderId"`
	ShippingTrackingID string      `json:"shippingTrackingId"`
	ShippingCost       money.Money `json:"shippingCost"`
	ShippingAddress    Address     `json:"shippingAddress"`
	Items              []OrderItem `json:"items"`
}

// Product is a catalog entry. Prices are kept in USD and converted at
// checkout time.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Picture     string      `json:"picture"`
	PriceUSD    money.Money `json:"priceUsd"`
	Categories  []string    `json:"categories"`
}

// Ad is a contextual advertisement pointing at a product page.
type Ad struct {
	RedirectURL string `json:"redirectUrl"`
	Text        string `json:"text"`
}
