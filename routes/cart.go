package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	cartControllers "github.com/defaulths/E-commerceWeb-GERALDO/controllers/cart"
)

// SetupCartRoutes registers the cart endpoints and the live badge feed.
func SetupCartRoutes(r *gin.Engine, carts *cart.Manager) {
	// Push a badge update to connected clients after every mutation.
	carts.Subscribe(cartControllers.BroadcastCartChange)

	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(carts))                      // GET /cart
		cartGroup.POST("/", cartControllers.AddCartItem(carts))                 // POST /cart
		cartGroup.PUT("/", cartControllers.SetCartItemQuantity(carts))          // PUT /cart
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(carts)) // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(carts))                 // DELETE /cart

		// websocket endpoint for real-time cart count updates
		cartGroup.GET("/ws", cartControllers.CartWebSocketHandler)
	}
}
