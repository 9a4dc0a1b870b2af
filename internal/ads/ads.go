// Package ads serves contextual product advertisements keyed by
// category, with a random fallback.
package ads

import (
	"context"
	"math/rand"

	"github.com/RaikyD/storefront-checkout/internal/domain"
	"github.com/RaikyD/storefront-checkout/internal/logger"
)

const maxAdsToServe = 2

type Service struct {
	byCategory map[string][]domain.Ad
	all        []domain.Ad
}

func NewService() *Service {
	byCategory := map[string][]domain.Ad{
		"clothing":    {{RedirectURL: "/product/66VCHSJNUP", Text: "Tank top for sale. 20% off."}},
		"accessories": {{RedirectURL: "/product/1YMWWN1N4O", Text: "Watch for sale. Buy one, get second kit for free."}},
		"footwear":    {{RedirectURL: "/product/L9ECAV7KIM", Text: "Loafers for sale. Buy one, get second one for free."}},
		"hair":        {{RedirectURL: "/product/2ZYFJ3GM2N", Text: "Hairdryer for sale. 50% off."}},
		"decor":       {{RedirectURL: "/product/0PUK6V6EV0", Text: "Candle holder for sale. 30% off."}},
		"kitchen": {
			{RedirectURL: "/product/9SIQT8TOJO", Text: "Bamboo glass jar for sale. 10% off."},
			{RedirectURL: "/product/6E92ZMYYFZ", Text: "Mug for sale. Buy two, get third one for free."},
		},
	}

	var all []domain.Ad
	for _, ads := range byCategory {
		all = append(all, ads...)
	}
	return &Service{byCategory: byCategory, all: all}
}

// GetAds returns ads matching the context keys, or random ads when
// nothing matches.
func (s *Service) GetAds(ctx context.Context, contextKeys []string) ([]domain.Ad, error) {
	logger.Debug("ad request", "context_keys", contextKeys)

	var out []domain.Ad
	for _, key := range contextKeys {
		out = append(out, s.byCategory[key]...)
	}
	if len(out) == 0 {
		out = s.randomAds()
	}
	return out, nil
}

func (s *Service) randomAds() []domain.Ad {
	out := make([]domain.Ad, 0, maxAdsToServe)
	for i := 0; i < maxAdsToServe; i++ {
		out = append(out, s.all[rand.Intn(len(s.all))])
	}
	return out
}
