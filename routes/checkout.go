package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	checkoutControllers "github.com/defaulths/E-commerceWeb-GERALDO/controllers/checkout"
)

// SetupCheckoutRoutes registers order placement and guest session minting.
func SetupCheckoutRoutes(r *gin.Engine, carts *cart.Manager) {
	r.POST("/checkout", checkoutControllers.PlaceOrderHandler(carts)) // POST /checkout
	r.POST("/session", checkoutControllers.CreateGuestSession())      // POST /session
}
