package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	tradeapp "github.com/roastery/storefront/internal/application/trade"
	"github.com/roastery/storefront/internal/infrastructure/persistence"
	"github.com/roastery/storefront/internal/infrastructure/persistence/memory"
	"github.com/roastery/storefront/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTestEngine(t *testing.T, verifyTotals bool) (*gin.Engine, *memory.OrderRepository) {
	t.Helper()
	productRepo := memory.NewProductRepository()
	require.NoError(t, persistence.SeedCatalog(context.Background(), productRepo))
	orderRepo := memory.NewOrderRepository()

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewOrderHandler(tradeapp.NewService(orderRepo, productRepo, verifyTotals, nil))).
		Setup()
	return engine, orderRepo
}

func postOrder(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

const validOrderBody = `{
	"items": [
		{"id": 1, "name": "Ethiopian Yirgacheffe", "price": 18.91, "image": "x.jpg"},
		{"id": 1, "name": "Ethiopian Yirgacheffe", "price": 18.91, "image": "x.jpg"},
		{"id": 2, "name": "Colombian Supremo", "price": 16.10, "image": "y.jpg"}
	],
	"total": 53.92,
	"customer": {"name": "Ana"}
}`

func TestOrderHandlerSubmit(t *testing.T) {
	t.Run("accepts a valid order with 201 and assigned id", func(t *testing.T) {
		engine, orderRepo := newOrderTestEngine(t, false)

		w := postOrder(engine, validOrderBody)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp struct {
			Message string `json:"message"`
			OrderID int64  `json:"orderId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Order placed successfully!", resp.Message)
		assert.Equal(t, int64(1), resp.OrderID)

		orders, err := orderRepo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Len(t, orders[0].Items, 3)
		assert.Equal(t, "53.92", orders[0].Total.StringFixed(2))
		assert.Equal(t, "Ana", orders[0].Customer.Name)
	})

	t.Run("assigns increasing ids across submissions", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, false)

		for want := int64(1); want <= 3; want++ {
			w := postOrder(engine, validOrderBody)
			require.Equal(t, http.StatusCreated, w.Code)

			var resp struct {
				OrderID int64 `json:"orderId"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, want, resp.OrderID)
		}
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		engine, orderRepo := newOrderTestEngine(t, false)

		w := postOrder(engine, `{"items": [`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"error"`)

		count, err := orderRepo.Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("rejects empty items with 400", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, false)

		w := postOrder(engine, `{"items": [], "total": 0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects missing items with 400", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, false)

		w := postOrder(engine, `{"total": 10}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects wrongly typed fields with 400", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, false)

		w := postOrder(engine, `{"items": "not-an-array", "total": 10}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderHandlerSubmitWithVerification(t *testing.T) {
	t.Run("accepts order matching the catalog", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, true)

		w := postOrder(engine, validOrderBody)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("rejects unknown product with 422", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, true)

		w := postOrder(engine, `{
			"items": [{"id": 99, "name": "Ghost Roast", "price": 1.00}],
			"total": 1.00
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN_PRODUCT")
	})

	t.Run("rejects drifted price with 422", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, true)

		w := postOrder(engine, `{
			"items": [{"id": 1, "name": "Ethiopian Yirgacheffe", "price": 0.01}],
			"total": 0.01
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "PRICE_MISMATCH")
	})

	t.Run("rejects wrong total with 422", func(t *testing.T) {
		engine, _ := newOrderTestEngine(t, true)

		w := postOrder(engine, `{
			"items": [{"id": 1, "name": "Ethiopian Yirgacheffe", "price": 18.91}],
			"total": 10.00
		}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "TOTAL_MISMATCH")
	})
}
