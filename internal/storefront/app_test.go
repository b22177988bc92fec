package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	server     *httptest.Server
	orderPosts atomic.Int64
	failOrders bool
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Ethiopian Yirgacheffe", "description": "Floral", "price": 18.91, "rating": 4.5, "image": "a.jpg"},
			{"id": 2, "name": "Colombian Supremo", "description": "Balanced", "price": 16.10, "rating": 4.0, "image": "b.jpg"}
		]`))
	})
	mux.HandleFunc("GET /api/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("q") == "colombian" {
			_, _ = w.Write([]byte(`[{"id": 2, "name": "Colombian Supremo", "price": 16.10}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	mux.HandleFunc("POST /api/orders", func(w http.ResponseWriter, r *http.Request) {
		n := api.orderPosts.Add(1)
		w.Header().Set("Content-Type", "application/json")
		if api.failOrders {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": {"code": "EMPTY_ORDER", "message": "Order must contain at least one item"}}`))
			return
		}
		var body struct {
			Items []CartLine      `json:"items"`
			Total decimal.Decimal `json:"total"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(OrderConfirmation{Message: "Order placed successfully!", OrderID: n})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "Message sent successfully!"}`))
	})
	mux.HandleFunc("POST /api/newsletter", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message": "Subscribed to coffee updates!"}`))
	})

	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)
	return api
}

func newTestApp(t *testing.T, api *fakeAPI) (*App, *[]string) {
	t.Helper()
	client := NewClient(api.server.URL+"/api", 5*time.Second)
	store := NewCartStore(filepath.Join(t.TempDir(), "cart.json"))

	var notes []string
	notifier := NotifierFunc(func(msg string) { notes = append(notes, msg) })

	app, err := NewApp(client, store, notifier, nil)
	require.NoError(t, err)
	return app, &notes
}

func TestAppAddToCart(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots a known product and notifies", func(t *testing.T) {
		app, notes := newTestApp(t, newFakeAPI(t))

		require.NoError(t, app.AddToCart(ctx, 1))
		require.Equal(t, 1, app.Cart().Len())

		line := app.Cart().Lines[0]
		assert.Equal(t, "Ethiopian Yirgacheffe", line.Name)
		assert.True(t, line.Price.Equal(decimal.RequireFromString("18.91")))
		require.Len(t, *notes, 1)
		assert.Equal(t, "Ethiopian Yirgacheffe added to cart!", (*notes)[0])
	})

	t.Run("unknown product adds nothing but still notifies success", func(t *testing.T) {
		app, notes := newTestApp(t, newFakeAPI(t))

		require.NoError(t, app.AddToCart(ctx, 99))
		assert.Zero(t, app.Cart().Len())
		require.Len(t, *notes, 1)
		assert.Equal(t, "Item added to cart!", (*notes)[0])
	})

	t.Run("persists across restarts", func(t *testing.T) {
		api := newFakeAPI(t)
		client := NewClient(api.server.URL+"/api", 5*time.Second)
		path := filepath.Join(t.TempDir(), "cart.json")

		app, err := NewApp(client, NewCartStore(path), nil, nil)
		require.NoError(t, err)
		require.NoError(t, app.AddToCart(ctx, 2))

		reopened, err := NewApp(client, NewCartStore(path), nil, nil)
		require.NoError(t, err)
		require.Equal(t, 1, reopened.Cart().Len())
		assert.Equal(t, "Colombian Supremo", reopened.Cart().Lines[0].Name)
	})
}

func TestAppRemoveFromCart(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t, newFakeAPI(t))
	require.NoError(t, app.AddToCart(ctx, 1))
	require.NoError(t, app.AddToCart(ctx, 2))

	t.Run("removes by index", func(t *testing.T) {
		require.NoError(t, app.RemoveFromCart(0))
		require.Equal(t, 1, app.Cart().Len())
		assert.Equal(t, "Colombian Supremo", app.Cart().Lines[0].Name)
	})

	t.Run("out-of-range index errors and leaves the cart alone", func(t *testing.T) {
		require.Error(t, app.RemoveFromCart(5))
		assert.Equal(t, 1, app.Cart().Len())
	})
}

func TestAppCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart never reaches the network", func(t *testing.T) {
		api := newFakeAPI(t)
		app, notes := newTestApp(t, api)

		confirmation, err := app.Checkout(ctx, "Ana")
		require.NoError(t, err)
		assert.Nil(t, confirmation)
		assert.Zero(t, api.orderPosts.Load())
		require.Len(t, *notes, 1)
		assert.Equal(t, "Your cart is empty!", (*notes)[0])
	})

	t.Run("success clears the cart and persists", func(t *testing.T) {
		api := newFakeAPI(t)
		app, notes := newTestApp(t, api)
		require.NoError(t, app.AddToCart(ctx, 1))
		require.NoError(t, app.AddToCart(ctx, 2))

		confirmation, err := app.Checkout(ctx, "Ana")
		require.NoError(t, err)
		require.NotNil(t, confirmation)
		assert.Equal(t, int64(1), confirmation.OrderID)
		assert.Zero(t, app.Cart().Len())
		assert.Contains(t, (*notes)[len(*notes)-1], "Order placed successfully!")
	})

	t.Run("failure leaves the cart untouched", func(t *testing.T) {
		api := newFakeAPI(t)
		api.failOrders = true
		app, _ := newTestApp(t, api)
		require.NoError(t, app.AddToCart(ctx, 1))

		_, err := app.Checkout(ctx, "Ana")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, 1, app.Cart().Len())
	})
}

func TestAppContact(t *testing.T) {
	ctx := context.Background()
	app, notes := newTestApp(t, newFakeAPI(t))

	require.NoError(t, app.SendMessage(ctx, "Ana", "ana@example.com", "hi"))
	require.NoError(t, app.Subscribe(ctx, "ana@example.com"))

	require.Len(t, *notes, 2)
	assert.Equal(t, "Message sent successfully!", (*notes)[0])
	assert.Equal(t, "Subscribed to coffee updates!", (*notes)[1])
}
