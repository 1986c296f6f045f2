package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	"github.com/defaulths/E-commerceWeb-GERALDO/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *cart.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewManager(catalog.New(), storage.NewMemorySlot())

	r := gin.New()
	r.GET("/cart", GetCart(carts))
	r.POST("/cart", AddCartItem(carts))
	r.PUT("/cart", SetCartItemQuantity(carts))
	r.DELETE("/cart/:product_id", DeleteCartItem(carts))
	r.DELETE("/cart", ClearCart(carts))
	return r, carts
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddAndGetCart(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Items []struct {
			ID       uint `json:"id"`
			Quantity int  `json:"quantity"`
		} `json:"items"`
		Total float64 `json:"total"`
		Count int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, uint(1), body.Items[0].ID)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 5.98, body.Total)
	assert.Equal(t, 2, body.Count)
}

func TestAddUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":999,"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Product does not exist")
}

func TestAddBeyondStockReportsConflictWithClampedCart(t *testing.T) {
	r, carts := newTestRouter(t)

	// Product 3 has stock 20.
	w := doJSON(t, r, http.MethodPost, "/cart", `{"product_id":3,"quantity":25}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Stock limit reached")

	lines := carts.Store("").Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 20, lines[0].Quantity)
}

func TestSetQuantityAndDelete(t *testing.T) {
	r, carts := newTestRouter(t)
	require.NoError(t, carts.Store("").Add(1, 2))

	w := doJSON(t, r, http.MethodPut, "/cart", `{"product_id":1,"quantity":60}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 2, carts.Store("").Lines()[0].Quantity)

	w = doJSON(t, r, http.MethodPut, "/cart", `{"product_id":1,"quantity":4}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, carts.Store("").Lines()[0].Quantity)

	w = doJSON(t, r, http.MethodDelete, "/cart/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Store("").Lines())

	// Deleting an absent item is still a 200.
	w = doJSON(t, r, http.MethodDelete, "/cart/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCart(t *testing.T) {
	r, carts := newTestRouter(t)
	require.NoError(t, carts.Store("").Add(1, 2))
	require.NoError(t, carts.Store("").Add(2, 1))

	w := doJSON(t, r, http.MethodDelete, "/cart", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, carts.Store("").Lines())
}

func TestGuestCartsAreIsolated(t *testing.T) {
	r, carts := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart?guest_id=guest_a", `{"product_id":1,"quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Len(t, carts.Store("guest_a").Lines(), 1)
	assert.Empty(t, carts.Store("").Lines())
	assert.Empty(t, carts.Store("guest_b").Lines())
}
