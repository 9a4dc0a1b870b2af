// Package recommendation suggests catalog products the user is not
// already buying.
package recommendation

import (
	"context"
	"math/rand"

	"github.com/RaikyD/storefront-checkout/internal/catalog"
)

const maxRecommendations = 4

// Service draws random product ids from the catalog, excluding ids the
// caller already has in the cart.
type Service struct {
	catalog *catalog.Catalog
}

func NewService(c *catalog.Catalog) *Service {
	return &Service{catalog: c}
}

func (s *Service) ListRecommendations(ctx context.Context, userID string, productIDs []string) ([]string, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	exclude := make(map[string]bool, len(productIDs))
	for _, id := range productIDs {
		exclude[id] = true
	}

	var candidates []string
	for _, p := range products {
		if !exclude[p.ID] {
			candidates = append(candidates, p.ID)
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}
	return candidates, nil
}
