package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	products, err := c.ListProducts(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "USD", p.PriceUSD.CurrencyCode, "catalog prices are USD")
	}
}

func TestGetProduct(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	p, err := c.GetProduct(context.Background(), "OLJCESPC7Z")
	require.NoError(t, err)
	assert.Equal(t, "Sunglasses", p.Name)

	_, err = c.GetProduct(context.Background(), "NO-SUCH-ID")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestSearchProducts(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"by name", "sunglasses", []string{"OLJCESPC7Z"}},
		{"case insensitive", "MUG", []string{"6E92ZMYYFZ"}},
		{"by description", "kitchen", []string{"LS4PSXUNUM", "9SIQT8TOJO"}},
		{"no match", "zeppelin", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.SearchProducts(context.Background(), tt.query)
			require.NoError(t, err)

			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}
