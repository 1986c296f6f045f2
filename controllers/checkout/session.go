package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// POST /session
// Mints an opaque guest id, giving the client its own cart key instead of the
// shared default slot. Nothing is signed; there are no accounts.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := "guest_" + uuid.NewString()
		c.JSON(http.StatusOK, gin.H{"guest_id": guestID})
	}
}
