package ads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAdsByCategory(t *testing.T) {
	s := NewService()

	got, err := s.GetAds(context.Background(), []string{"kitchen"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, ad := range got {
		assert.NotEmpty(t, ad.RedirectURL)
		assert.NotEmpty(t, ad.Text)
	}
}

func TestGetAdsFallsBackToRandom(t *testing.T) {
	s := NewService()

	got, err := s.GetAds(context.Background(), []string{"spaceships"})
	require.NoError(t, err)
	assert.Len(t, got, maxAdsToServe, "unknown categories still get ads")

	got, err = s.GetAds(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, got, maxAdsToServe)
}
