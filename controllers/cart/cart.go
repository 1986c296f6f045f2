package cartControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/defaulths/E-commerceWeb-GERALDO/cart"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// storeFor resolves the cart for this request. The guest_id query param
// selects a guest cart; without it every request shares the default cart,
// like every page of the storefront sharing one storage key.
func storeFor(c *gin.Context, carts *cart.Manager) *cart.Store {
	return carts.Store(c.Query("guest_id"))
}

// snapshotJSON rounds the total to cents for display.
func snapshotJSON(snap cart.Snapshot) gin.H {
	return gin.H{
		"guest_id": snap.Key,
		"items":    snap.Lines,
		"total":    math.Round(snap.Total*100) / 100,
		"count":    snap.Count,
	}
}

// GET /cart
func GetCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, snapshotJSON(storeFor(c, carts).Snapshot()))
	}
}

// POST /cart
func AddCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := storeFor(c, carts)
		err := store.Add(input.ProductID, input.Quantity)
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		case errors.Is(err, cart.ErrStockExceeded):
			// The quantity was clamped to stock; report the failure along
			// with the cart as it now stands.
			c.JSON(http.StatusConflict, gin.H{
				"error": "Stock limit reached",
				"cart":  snapshotJSON(store.Snapshot()),
			})
		default:
			c.JSON(http.StatusOK, snapshotJSON(store.Snapshot()))
		}
	}
}

// PUT /cart
func SetCartItemQuantity(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			ProductID uint `json:"product_id" binding:"required"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		store := storeFor(c, carts)
		err := store.SetQuantity(input.ProductID, input.Quantity)
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		case errors.Is(err, cart.ErrStockExceeded):
			c.JSON(http.StatusConflict, gin.H{"error": "Stock limit reached"})
		default:
			c.JSON(http.StatusOK, snapshotJSON(store.Snapshot()))
		}
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		store := storeFor(c, carts)
		store.Remove(uint(productID))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart
func ClearCart(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeFor(c, carts).Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /admin/carts/:guest_id
func GetCartByGuestID(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := c.Param("guest_id")
		if guestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
			return
		}
		c.JSON(http.StatusOK, snapshotJSON(carts.Store(guestID).Snapshot()))
	}
}
