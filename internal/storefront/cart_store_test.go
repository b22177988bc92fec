package storefront

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore(t *testing.T) {
	t.Run("missing file loads an empty cart", func(t *testing.T) {
		store := NewCartStore(filepath.Join(t.TempDir(), "cart.json"))
		cart, err := store.Load()
		require.NoError(t, err)
		assert.Zero(t, cart.Len())
	})

	t.Run("round-trips the cart", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		store := NewCartStore(path)

		cart := &Cart{}
		cart.Add(espressoCartLine())
		cart.Add(latteCartLine())
		require.NoError(t, store.Save(cart))

		loaded, err := store.Load()
		require.NoError(t, err)
		require.Equal(t, 2, loaded.Len())
		assert.Equal(t, "Ethiopian Yirgacheffe", loaded.Lines[0].Name)
		assert.True(t, loaded.Lines[0].Price.Equal(espressoCartLine().Price))
		assert.Equal(t, "53.92", loaded.Total().Add(espressoCartLine().Price).StringFixed(2))
	})

	t.Run("persists as a bare JSON array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		store := NewCartStore(path)

		cart := &Cart{}
		cart.Add(espressoCartLine())
		require.NoError(t, store.Save(cart))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		// The same shape the page keeps under its cart storage key:
		// a top-level array, no wrapping object
		var lines []CartLine
		require.NoError(t, json.Unmarshal(data, &lines))
		require.Len(t, lines, 1)
		assert.Equal(t, "Ethiopian Yirgacheffe", lines[0].Name)

		cart.Clear()
		require.NoError(t, store.Save(cart))
		data, err = os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(data)))
	})

	t.Run("loads a bare array written by another client", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":2,"name":"Colombian Supremo","price":16.10,"image":"b.jpg"}]`), 0o644))

		cart, err := NewCartStore(path).Load()
		require.NoError(t, err)
		require.Equal(t, 1, cart.Len())
		assert.Equal(t, "Colombian Supremo", cart.Lines[0].Name)
	})

	t.Run("corrupt file loads as empty instead of failing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		cart, err := NewCartStore(path).Load()
		require.NoError(t, err)
		assert.Zero(t, cart.Len())
	})

	t.Run("save replaces previous contents", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cart.json")
		store := NewCartStore(path)

		cart := &Cart{}
		cart.Add(espressoCartLine())
		require.NoError(t, store.Save(cart))

		cart.Clear()
		require.NoError(t, store.Save(cart))

		loaded, err := store.Load()
		require.NoError(t, err)
		assert.Zero(t, loaded.Len())
	})
}
