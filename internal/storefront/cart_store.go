package storefront

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// CartStore persists the cart as a JSON file so it survives client
// restarts, mirroring the page's localStorage cart.
type CartStore struct {
	path string
}

// NewCartStore creates a store backed by the given file path
func NewCartStore(path string) *CartStore {
	return &CartStore{path: path}
}

// Load reads the persisted cart. A missing file is not an error: the
// first run starts with an empty cart. A corrupt file is also treated
// as empty rather than blocking the client.
func (s *CartStore) Load() (*Cart, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Cart{}, nil
		}
		return nil, fmt.Errorf("reading cart file: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return &Cart{}, nil
	}
	return &cart, nil
}

// Save writes the cart atomically: marshal, write to a temp file in the
// same directory, rename over the target.
func (s *CartStore) Save(cart *Cart) error {
	data, err := json.MarshalIndent(cart, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".cart-*.json")
	if err != nil {
		return fmt.Errorf("creating temp cart file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing cart file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing cart file: %w", err)
	}
	return nil
}
