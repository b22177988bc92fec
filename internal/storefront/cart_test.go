package storefront

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func espressoCartLine() CartLine {
	return CartLine{ProductID: 1, Name: "Ethiopian Yirgacheffe", Price: decimal.RequireFromString("18.91")}
}

func latteCartLine() CartLine {
	return CartLine{ProductID: 2, Name: "Colombian Supremo", Price: decimal.RequireFromString("16.10")}
}

func TestCartAdd(t *testing.T) {
	t.Run("appends lines in order, duplicates allowed", func(t *testing.T) {
		var cart Cart
		cart.Add(espressoCartLine())
		cart.Add(espressoCartLine())
		cart.Add(latteCartLine())

		require.Equal(t, 3, cart.Len())
		assert.Equal(t, int64(1), cart.Lines[0].ProductID)
		assert.Equal(t, int64(1), cart.Lines[1].ProductID)
		assert.Equal(t, int64(2), cart.Lines[2].ProductID)
	})
}

func TestCartRemoveAt(t *testing.T) {
	newCart := func() *Cart {
		cart := &Cart{}
		cart.Add(espressoCartLine())
		cart.Add(latteCartLine())
		return cart
	}

	t.Run("removes the addressed line and keeps order", func(t *testing.T) {
		cart := newCart()
		require.True(t, cart.RemoveAt(0))
		require.Equal(t, 1, cart.Len())
		assert.Equal(t, "Colombian Supremo", cart.Lines[0].Name)
	})

	t.Run("rejects out-of-range indexes", func(t *testing.T) {
		cart := newCart()
		assert.False(t, cart.RemoveAt(-1))
		assert.False(t, cart.RemoveAt(2))
		assert.Equal(t, 2, cart.Len())
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		var cart Cart
		assert.True(t, cart.Total().IsZero())
	})

	t.Run("sums prices with exact decimal arithmetic", func(t *testing.T) {
		var cart Cart
		cart.Add(espressoCartLine())
		cart.Add(espressoCartLine())
		cart.Add(latteCartLine())

		// 18.91 + 18.91 + 16.10 — binary floats would drift here
		assert.Equal(t, "53.92", cart.Total().StringFixed(2))
	})
}

func TestCartClear(t *testing.T) {
	var cart Cart
	cart.Add(espressoCartLine())
	cart.Clear()
	assert.Zero(t, cart.Len())
	assert.True(t, cart.Total().IsZero())
}
