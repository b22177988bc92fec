package storefront

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Notifier receives user-facing messages, the terminal equivalent of
// the page's notification toast
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) { f(message) }

// App drives the storefront client: a locally persisted cart over the
// HTTP API, with user feedback through a Notifier.
type App struct {
	client   *Client
	cart     *Cart
	store    *CartStore
	notifier Notifier
	logger   *zap.Logger

	// products caches the last fetched catalog so add-to-cart can
	// snapshot a product without a round trip per add
	products []Product
}

// NewApp loads the persisted cart and returns a ready App
func NewApp(client *Client, store *CartStore, notifier Notifier, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}

	cart, err := store.Load()
	if err != nil {
		return nil, err
	}

	return &App{
		client:   client,
		cart:     cart,
		store:    store,
		notifier: notifier,
		logger:   logger.Named("storefront"),
	}, nil
}

// Cart exposes the current cart state
func (a *App) Cart() *Cart {
	return a.cart
}

// Refresh fetches the catalog and caches it
func (a *App) Refresh(ctx context.Context) ([]Product, error) {
	products, err := a.client.Products(ctx)
	if err != nil {
		return nil, err
	}
	a.products = products
	return products, nil
}

// Search queries the server; results are not cached, the add-to-cart
// cache stays pinned to the full catalog
func (a *App) Search(ctx context.Context, query string) ([]Product, error) {
	return a.client.Search(ctx, query)
}

// AddToCart snapshots the product into the cart and persists it. An
// unknown ID adds nothing but still shows the success notice, matching
// the page.
func (a *App) AddToCart(ctx context.Context, productID int64) error {
	if len(a.products) == 0 {
		if _, err := a.Refresh(ctx); err != nil {
			return err
		}
	}

	for _, p := range a.products {
		if p.ID == productID {
			a.cart.Add(CartLine{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Image:     p.Image,
			})
			if err := a.store.Save(a.cart); err != nil {
				return err
			}
			a.notifier.Notify(fmt.Sprintf("%s added to cart!", p.Name))
			return nil
		}
	}

	// An unknown ID still reads as success to the user; the warning is
	// for the operator, since it usually means a stale catalog cache
	a.logger.Warn("add to cart for unknown product id",
		zap.Int64("product_id", productID),
		zap.Int("catalog_size", len(a.products)),
	)
	a.notifier.Notify("Item added to cart!")
	return nil
}

// RemoveFromCart deletes the line at the given index and persists the
// cart. Out-of-range indexes leave the cart untouched.
func (a *App) RemoveFromCart(index int) error {
	if !a.cart.RemoveAt(index) {
		return fmt.Errorf("no cart line at index %d", index)
	}
	return a.store.Save(a.cart)
}

// Total returns the decimal sum of the cart's line prices
func (a *App) Total() decimal.Decimal {
	return a.cart.Total()
}

// Checkout submits the cart as an order. An empty cart never reaches
// the network. On success the cart is cleared and persisted; on
// failure it is left untouched so the user can retry.
func (a *App) Checkout(ctx context.Context, customerName string) (*OrderConfirmation, error) {
	if a.cart.Len() == 0 {
		a.notifier.Notify("Your cart is empty!")
		return nil, nil
	}

	confirmation, err := a.client.SubmitOrder(ctx, a.cart.Lines, a.cart.Total(), customerName)
	if err != nil {
		return nil, err
	}

	a.cart.Clear()
	if err := a.store.Save(a.cart); err != nil {
		// The order is already placed; losing the clear only risks a
		// stale cart on next start
		a.logger.Warn("failed to persist cleared cart", zap.Error(err))
	}

	a.notifier.Notify(fmt.Sprintf("%s (order #%d)", confirmation.Message, confirmation.OrderID))
	return confirmation, nil
}

// SendMessage submits the contact form
func (a *App) SendMessage(ctx context.Context, name, email, message string) error {
	ack, err := a.client.SendMessage(ctx, name, email, message)
	if err != nil {
		return err
	}
	a.notifier.Notify(ack.Message)
	return nil
}

// Subscribe submits a newsletter signup
func (a *App) Subscribe(ctx context.Context, email string) error {
	ack, err := a.client.Subscribe(ctx, email)
	if err != nil {
		return err
	}
	a.notifier.Notify(ack.Message)
	return nil
}
