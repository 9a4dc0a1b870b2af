package presentation

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/RaikyD/storefront-checkout/internal/ads"
	"github.com/RaikyD/storefront-checkout/internal/catalog"
	"github.com/RaikyD/storefront-checkout/internal/checkout"
	"github.com/RaikyD/storefront-checkout/internal/currency"
	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/presentation/helpers"
	"github.com/RaikyD/storefront-checkout/internal/recommendation"
)

// CartStore widens checkout's read/empty contract with AddItem. The
// checkout package never adds items, so the add operation only exists
// on this surface.
type CartStore interface {
	checkout.CartStore
	AddItem(ctx context.Context, userID string, item domain.CartItem) error
}

// StoreHandler is the thin JSON surface over the storefront services.
// No rendering here; it just maps HTTP to the collaborators.
type StoreHandler struct {
	checkout  *checkout.Service
	cart      CartStore
	catalog   *catalog.Catalog
	converter *currency.Converter
	recs      *recommendation.Service
	ads       *ads.Service
}

func NewStoreHandler(
	co *checkout.Service,
	cart CartStore,
	cat *catalog.Catalog,
	conv *currency.Converter,
	recs *recommendation.Service,
	adSvc *ads.Service,
) *StoreHandler {
	return &StoreHandler{
		checkout:  co,
		cart:      cart,
		catalog:   cat,
		converter: conv,
		recs:      recs,
		ads:       adSvc,
	}
}

func (h *StoreHandler) Register(r chi.Router) {
	r.Post("/checkout", h.PlaceOrder)
	r.Get("/products", h.ListProducts)
	r.Get("/products/search", h.SearchProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Get("/currencies", h.ListCurrencies)
	r.Get("/cart/{userID}", h.GetCart)
	r.Post("/cart/{userID}", h.AddCartItem)
	r.Delete("/cart/{userID}", h.EmptyCart)
	r.Get("/recommendations/{userID}", h.ListRecommendations)
	r.Get("/ads", h.GetAds)
}

func (h *StoreHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req checkout.PlaceOrderRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.UserCurrency) == "" {
		helpers.HttpError(w, http.StatusBadRequest, "userId and userCurrency are required")
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), req)
	if err != nil {
		helpers.HttpError(w, statusFor(err), err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"order": order})
}

// statusFor maps the checkout error taxonomy to HTTP statuses without
// leaking anything beyond the failed stage.
func statusFor(err error) int {
	switch {
	case errors.Is(err, checkout.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, checkout.ErrProductLookup):
		return http.StatusNotFound
	case errors.Is(err, currency.ErrUnsupportedCurrency):
		return http.StatusBadRequest
	case errors.Is(err, checkout.ErrCartUnavailable),
		errors.Is(err, checkout.ErrShippingFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		helpers.HttpError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *StoreHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		helpers.HttpError(w, http.StatusNotFound, err.Error())
		return
	}
	helpers.WriteJSON(w, http.StatusOK, p)
}

func (h *StoreHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.SearchProducts(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		helpers.HttpError(w, http.StatusInternalServerError, "search failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *StoreHandler) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]any{
		"currencies": h.converter.SupportedCurrencies(),
	})
}

func (h *StoreHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.GetCart(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		helpers.HttpError(w, http.StatusBadGateway, "cart unavailable")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, cart)
}

func (h *StoreHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := helpers.DecodeJSON(r.Body, &item); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if item.ProductID == "" || item.Quantity == 0 {
		helpers.HttpError(w, http.StatusBadRequest, "productId and quantity are required")
		return
	}
	if _, err := h.catalog.GetProduct(r.Context(), item.ProductID); err != nil {
		helpers.HttpError(w, http.StatusNotFound, err.Error())
		return
	}
	if err := h.cart.AddItem(r.Context(), chi.URLParam(r, "userID"), item); err != nil {
		helpers.HttpError(w, http.StatusBadGateway, "cart unavailable")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, map[string]any{"status": "ok"})
}

func (h *StoreHandler) EmptyCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.EmptyCart(r.Context(), chi.URLParam(r, "userID")); err != nil {
		helpers.HttpError(w, http.StatusBadGateway, "cart unavailable")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *StoreHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	cart, err := h.cart.GetCart(r.Context(), userID)
	if err != nil {
		helpers.HttpError(w, http.StatusBadGateway, "cart unavailable")
		return
	}
	var inCart []string
	for _, it := range cart.Items {
		inCart = append(inCart, it.ProductID)
	}

	recs, err := h.recs.ListRecommendations(r.Context(), userID, inCart)
	if err != nil {
		helpers.HttpError(w, http.StatusInternalServerError, "recommendations failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"productIds": recs})
}

func (h *StoreHandler) GetAds(w http.ResponseWriter, r *http.Request) {
	var keys []string
	if q := r.URL.Query().Get("keys"); q != "" {
		keys = strings.Split(q, ",")
	}
	adList, err := h.ads.GetAds(r.Context(), keys)
	if err != nil {
		helpers.HttpError(w, http.StatusInternalServerError, "ads failed")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, map[string]any{"ads": adList})
}
