package presentation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaikyD/storefront-checkout/internal/ads"
	"github.com/RaikyD/storefront-checkout/internal/cartstore"
	"github.com/RaikyD/storefront-checkout/internal/catalog"
	"github.com/RaikyD/storefront-checkout/internal/checkout"
	"github.com/RaikyD/storefront-checkout/internal/currency"
	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/email"
	"github.com/RaikyD/storefront-checkout/internal/payment"
	"github.com/RaikyD/storefront-checkout/internal/recommendation"
	"github.com/RaikyD/storefront-checkout/internal/shipping"
)

func testRouter(t *testing.T) (chi.Router, *cartstore.MemoryStore) {
	t.Helper()

	cat, err := catalog.Load()
	require.NoError(t, err)
	conv, err := currency.Load()
	require.NoError(t, err)

	cart := cartstore.NewMemoryStore()
	co := checkout.NewService(cart, cat, conv, shipping.NewQuoter(), payment.NewProcessor(), email.NewLogNotifier())

	r := chi.NewRouter()
	h := NewStoreHandler(co, cart, cat, conv, recommendation.NewService(cat), ads.NewService())
	r.Route("/api", h.Register)
	return r, cart
}

func TestCheckoutEndpoint(t *testing.T) {
	r, cart := testRouter(t)

	err := cart.AddItem(context.Background(), "user-1", domain.CartItem{ProductID: "OLJCESPC7Z", Quantity: 2})
	require.NoError(t, err)

	body := `{
		"userId": "user-1",
		"userCurrency": "USD",
		"address": {"streetAddress": "1 Main St", "city": "Springfield", "state": "IL", "country": "USA", "zipCode": 12345},
		"email": "user@example.com",
		"creditCard": {
			"creditCardNumber": "4432-8015-6152-0454",
			"creditCardCvv": 672,
			"creditCardExpirationYear": 2035,
			"creditCardExpirationMonth": 1
		}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Order domain.OrderResult `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Order.OrderID)
	assert.NotEmpty(t, resp.Order.ShippingTrackingID)
	assert.Len(t, resp.Order.Items, 1)

	// cart was emptied by the successful checkout
	got, err := cart.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func TestCheckoutDeclinedCard(t *testing.T) {
	r, cart := testRouter(t)

	err := cart.AddItem(context.Background(), "user-2", domain.CartItem{ProductID: "6E92ZMYYFZ", Quantity: 1})
	require.NoError(t, err)

	body := `{
		"userId": "user-2",
		"userCurrency": "USD",
		"address": {"streetAddress": "1 Main St", "city": "Springfield", "state": "IL", "country": "USA", "zipCode": 12345},
		"email": "user@example.com",
		"creditCard": {
			"creditCardNumber": "4432-8015-6152-0454",
			"creditCardCvv": 672,
			"creditCardExpirationYear": 2001,
			"creditCardExpirationMonth": 1
		}
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	// failed checkout leaves the cart alone
	got, err := cart.GetCart(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Len(t, got.Items, 1)
}

func TestCartEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cart/user-3", strings.NewReader(`{"productId": "1YMWWN1N4O", "quantity": 2}`))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// unknown product is rejected before touching the cart
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/cart/user-3", strings.NewReader(`{"productId": "NO-SUCH", "quantity": 1}`))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/cart/user-3", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cart domain.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, []domain.CartItem{{ProductID: "1YMWWN1N4O", Quantity: 2}}, cart.Items)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/cart/user-3", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProductAndCurrencyEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/OLJCESPC7Z", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var p domain.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Sunglasses", p.Name)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var cur struct {
		Currencies []string `json:"currencies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cur))
	assert.Contains(t, cur.Currencies, "EUR")
}
