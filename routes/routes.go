package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	"github.com/defaulths/E-commerceWeb-GERALDO/catalog"
)

// SetupRoutes is the single entry‐point that wires up the storefront, cart,
// checkout and admin route groups.
func SetupRoutes(r *gin.Engine, cat *catalog.Catalog, carts *cart.Manager) {
	// 1️⃣ Public catalog routes
	SetupProductRoutes(r, cat)

	// 2️⃣ Cart routes (guest_id query selects the cart)
	SetupCartRoutes(r, carts)

	// 3️⃣ Checkout + guest session routes
	SetupCheckoutRoutes(r, carts)

	// 4️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, cat, carts)
}
