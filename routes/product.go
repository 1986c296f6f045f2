package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	productControllers "github.com/defaulths/E-commerceWeb-GERALDO/controllers/product"
)

// SetupProductRoutes registers the read-only catalog endpoints.
func SetupProductRoutes(r *gin.Engine, cat *catalog.Catalog) {
	r.GET("/products", productControllers.GetProducts(cat))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(cat)) // GET /products/:id
	r.GET("/categories", productControllers.GetCategories(cat))    // GET /categories
}
