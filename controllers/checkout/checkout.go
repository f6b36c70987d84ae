package checkoutControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// GET /checkout
func GetSummary(svc *services.CheckoutService, cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Price the cart as currently stored, not a stale in-memory copy
		if err := cart.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, svc.Summary())
	}
}

// POST /checkout
func Confirm(svc *services.CheckoutService, cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load cart"})
			return
		}

		order, err := svc.Confirm(c.Request.Context())
		if err != nil {
			if models.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "Storage failure: " + err.Error()})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}
