package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/junaidrashid-git/storefront-api/controllers/checkout"
)

// SetupCheckoutRoutes registers the "/checkout" endpoints.
func SetupCheckoutRoutes(r *gin.Engine, deps Deps) {
	checkoutGroup := r.Group("/checkout")
	{
		checkoutGroup.GET("/", checkoutControllers.GetSummary(deps.Checkout, deps.Cart)) // GET /checkout
		checkoutGroup.POST("/", checkoutControllers.Confirm(deps.Checkout, deps.Cart))   // POST /checkout
	}
}
