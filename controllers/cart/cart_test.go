package cartControllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ARNOB663/Food-Network/cart"
	"github.com/ARNOB663/Food-Network/catalog"
	cartControllers "github.com/ARNOB663/Food-Network/controllers/cart"
	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	products []models.Product
}

func (s *stubSource) All(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubSource) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return nil, nil
}

func (s *stubSource) ByID(ctx context.Context, id string) (models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, catalog.ErrNotFound
}

type cartResponse struct {
	Items      []models.CartLine `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice float64           `json:"total_price"`
}

func setupRouter(t *testing.T, products ...models.Product) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewRegistry(cart.NewMemoryStore())
	catalogSvc := catalog.NewService(&stubSource{products: products})
	notifier := notify.NewEmitter()

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "u1") })
	r.GET("/user/cart", cartControllers.GetCart(carts))
	r.POST("/user/cart", cartControllers.AddToCart(carts, catalogSvc, notifier))
	r.PUT("/user/cart/:product_id", cartControllers.UpdateQuantity(carts))
	r.DELETE("/user/cart/:product_id", cartControllers.RemoveItem(carts))
	r.DELETE("/user/cart", cartControllers.ClearCart(carts))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAddToCartHandler(t *testing.T) {
	banana := models.Product{ID: "1", Name: "Banana", Price: 2.99, Category: "Fruits", Stock: 5}

	t.Run("adds within stock", func(t *testing.T) {
		r := setupRouter(t, banana)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":3}`)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		assert.Equal(t, 3, resp.TotalItems)
		assert.InDelta(t, 8.97, resp.TotalPrice, 1e-9)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		r := setupRouter(t, banana)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, decodeCart(t, w).TotalItems)
	})

	t.Run("stock overflow returns unchanged cart", func(t *testing.T) {
		r := setupRouter(t, banana)
		doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":3}`)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":3}`)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3, resp.Items[0].Quantity)
	})

	t.Run("unknown product is 404", func(t *testing.T) {
		r := setupRouter(t, banana)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"missing"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("fallback-only product is addable", func(t *testing.T) {
		// Source without product "1"; the catalog resolves it from the
		// sample set.
		r := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":2}`)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeCart(t, w)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Fresh Organic Bananas", resp.Items[0].Product.Name)
	})

	t.Run("invalid payload is 400", func(t *testing.T) {
		r := setupRouter(t, banana)

		w := doJSON(t, r, http.MethodPost, "/user/cart", `{`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateQuantityHandler(t *testing.T) {
	banana := models.Product{ID: "1", Name: "Banana", Price: 2.99, Category: "Fruits", Stock: 5}

	t.Run("sets quantity", func(t *testing.T) {
		r := setupRouter(t, banana)
		doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":2}`)

		w := doJSON(t, r, http.MethodPut, "/user/cart/1", `{"quantity":4}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 4, decodeCart(t, w).TotalItems)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		r := setupRouter(t, banana)
		doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":2}`)

		w := doJSON(t, r, http.MethodPut, "/user/cart/1", `{"quantity":0}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decodeCart(t, w).Items)
	})
}

func TestRemoveAndClearHandlers(t *testing.T) {
	banana := models.Product{ID: "1", Name: "Banana", Price: 2.99, Category: "Fruits", Stock: 5}
	kale := models.Product{ID: "2", Name: "Kale", Price: 1.99, Category: "Vegetables", Stock: 5}

	r := setupRouter(t, banana, kale)
	doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"1","quantity":2}`)
	doJSON(t, r, http.MethodPost, "/user/cart", `{"product_id":"2","quantity":1}`)

	w := doJSON(t, r, http.MethodDelete, "/user/cart/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCart(t, w)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "2", resp.Items[0].Product.ID)

	w = doJSON(t, r, http.MethodDelete, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)

	w = doJSON(t, r, http.MethodGet, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, decodeCart(t, w).TotalItems)
}
