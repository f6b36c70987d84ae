package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
)

// SetupCartRoutes registers all "/cart/*" endpoints.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("/", cartControllers.GetCart(deps.Cart))                                              // GET /cart
		cartGroup.POST("/", cartControllers.AddCartItem(deps.Cart, deps.Catalog))                           // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItem(deps.Cart))                            // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))                         // DELETE /cart/:product_id
		cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                                         // DELETE /cart
		cartGroup.POST("/:product_id/favorite", cartControllers.MoveToFavorites(deps.Cart, deps.Favorites)) // POST /cart/:product_id/favorite
	}
}
