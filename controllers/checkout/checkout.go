package checkoutControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
	"github.com/defaulths/E-commerceWeb-GERALDO/checkout"
)

// POST /checkout
// Body: the order form as a flat field map, e.g.
// {"name": "...", "email": "...", "address": "...", "city": "...", "zip": "..."}.
func PlaceOrderHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]string
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := carts.Store(c.Query("guest_id"))
		conf, err := checkout.PlaceOrder(store, fields)

		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		case errors.As(err, &verr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "Please fill in all required fields correctly.",
				"fields": verr.Fields,
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			c.JSON(http.StatusOK, gin.H{
				"message":  "Order Confirmed! Thank you for your order.",
				"order_id": conf.OrderID,
				"items":    conf.Items,
				"total":    conf.Total,
			})
		}
	}
}
