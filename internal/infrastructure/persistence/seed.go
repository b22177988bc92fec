package persistence

import (
	"context"

	"github.com/roastery/storefront/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the demo coffee catalog the storefront ships
// with. Prices are exact decimals, not floats.
func DefaultCatalog() []catalog.Product {
	return []catalog.Product{
		{
			Name:        "Ethiopian Yirgacheffe",
			Description: "Floral notes with bright citrus acidity and a tea-like body. Light roast.",
			Price:       decimal.RequireFromString("18.91"),
			Tag:         "BESTSELLER",
			Rating:      4.5,
			Image:       "https://i.pinimg.com/736x/b0/4d/18/b04d18874421fad2a349ea6d8fca7569.jpg",
		},
		{
			Name:        "Colombian Supremo",
			Description: "Balanced body with nutty undertones and a clean, sweet finish. Medium roast.",
			Price:       decimal.RequireFromString("16.10"),
			Tag:         "POPULAR",
			Rating:      4.0,
			Image:       "https://i.pinimg.com/736x/06/b8/9d/06b89d194bc96014019ad70eada9ee68.jpg",
		},
		{
			Name:        "Sumatra Mandheling",
			Description: "Earthy profile with low acidity and a heavy, syrupy body. Dark roast.",
			Price:       decimal.RequireFromString("17.50"),
			Tag:         "BOLD",
			Rating:      4.8,
			Image:       "https://i.pinimg.com/736x/aa/3d/4d/aa3d4defa8112efe2c198acdac395ffa.jpg",
		},
	}
}

// SeedCatalog loads the default catalog into an empty product store.
// A store that already has products is left untouched, so restarting
// against a durable SQLite file does not duplicate the seed.
func SeedCatalog(ctx context.Context, repo catalog.ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, product := range DefaultCatalog() {
		p := product
		if err := repo.Save(ctx, &p); err != nil {
			return err
		}
	}
	return nil
}
