package persistence

import (
	"context"
	"testing"

	"github.com/roastery/storefront/internal/infrastructure/persistence/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	products := DefaultCatalog()
	require.Len(t, products, 3)

	t.Run("prices are exact decimals", func(t *testing.T) {
		assert.True(t, products[0].Price.Equal(decimal.RequireFromString("18.91")))
		assert.True(t, products[1].Price.Equal(decimal.RequireFromString("16.10")))
		assert.True(t, products[2].Price.Equal(decimal.RequireFromString("17.50")))
	})

	t.Run("every product is complete", func(t *testing.T) {
		for _, p := range products {
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Description)
			assert.NotEmpty(t, p.Tag)
			assert.NotEmpty(t, p.Image)
			assert.Greater(t, p.Rating, 0.0)
		}
	})
}

func TestSeedCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds an empty store", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, SeedCatalog(ctx, repo))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)

		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, "Ethiopian Yirgacheffe", products[0].Name)
	})

	t.Run("is idempotent", func(t *testing.T) {
		repo := memory.NewProductRepository()
		require.NoError(t, SeedCatalog(ctx, repo))
		require.NoError(t, SeedCatalog(ctx, repo))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
