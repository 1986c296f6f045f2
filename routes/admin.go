package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
	cartControllers "github.com/defaulths/E-commerceWeb-GERALDO/controllers/cart"
	productControllers "github.com/defaulths/E-commerceWeb-GERALDO/controllers/product"
	"github.com/defaulths/E-commerceWeb-GERALDO/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API key middleware.
func SetupAdminRoutes(r *gin.Engine, cat *catalog.Catalog, carts *cart.Manager) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/carts/:guest_id", cartControllers.GetCartByGuestID(carts))       // GET /admin/carts/:guest_id
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(cat)) // GET /admin/products/export
	}
}
