package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	"github.com/defaulths/E-commerceWeb-GERALDO/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New()
	r := gin.New()
	r.GET("/products", GetProducts(cat))
	r.GET("/products/:id", GetProductByID(cat))
	r.GET("/categories", GetCategories(cat))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProducts(t *testing.T, w *httptest.ResponseRecorder) []models.Product {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	return products
}

func TestGetProducts(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/products")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeProducts(t, w), 8)
}

func TestGetProductsFilters(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/products?category=dairy")
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decodeProducts(t, w) {
		assert.Equal(t, "dairy", p.Category)
	}

	w = get(t, r, "/products?search=lemon")
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "Fresh Lemons", products[0].Name)

	// Unmatched filters return an empty list, not null.
	w = get(t, r, "/products?category=seafood")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetProductsSorting(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/products?sort_by=price&order=desc")
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeProducts(t, w)
	for i := 1; i < len(products); i++ {
		assert.GreaterOrEqual(t, products[i-1].Price, products[i].Price)
	}

	w = get(t, r, "/products?sort_by=weight")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductByID(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/products/2")
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Honeycrisp Apples", p.Name)

	w = get(t, r, "/products/999")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(t, r, "/products/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCategories(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/categories")
	require.Equal(t, http.StatusOK, w.Code)

	var categories []struct {
		Name     string           `json:"name"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "vegetables", categories[0].Name)
	assert.NotEmpty(t, categories[0].Products)
}
