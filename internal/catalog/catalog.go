// Package catalog serves product metadata from a static embedded
// catalog. Base prices are USD.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
)

var ErrProductNotFound = errors.New("product not found")

//go:embed products.json
var catalogData []byte

type catalogFile struct {
	Products []domain.Product `json:"products"`
}

// Catalog is a read-only product lookup, safe for concurrent use.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// New builds a catalog from an already-parsed product list.
func New(products []domain.Product) *Catalog {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{products: products, byID: byID}
}

// Load builds a catalog from the embedded product data.
func Load() (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(catalogData, &f); err != nil {
		return nil, fmt.Errorf("parse product catalog: %w", err)
	}
	logger.Debug("product catalog loaded", "products", len(f.Products))
	return New(f.Products), nil
}

func (c *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, nil
}

func (c *Catalog) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

// SearchProducts matches the query against product names and
// descriptions, case-insensitively.
func (c *Catalog) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	q := strings.ToLower(query)
	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
