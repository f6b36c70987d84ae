package routes

import (
	"github.com/gin-gonic/gin"

	favoriteControllers "github.com/junaidrashid-git/storefront-api/controllers/favorites"
)

// SetupFavoriteRoutes registers all "/favorites/*" endpoints.
func SetupFavoriteRoutes(r *gin.Engine, deps Deps) {
	favoritesGroup := r.Group("/favorites")
	{
		favoritesGroup.GET("/", favoriteControllers.GetFavorites(deps.Favorites))                                  // GET /favorites
		favoritesGroup.POST("/toggle", favoriteControllers.ToggleFavorite(deps.Favorites, deps.Catalog))           // POST /favorites/toggle
		favoritesGroup.POST("/:product_id/cart", favoriteControllers.AddFavoriteToCart(deps.Favorites, deps.Cart)) // POST /favorites/:product_id/cart
		favoritesGroup.DELETE("/:product_id", favoriteControllers.RemoveFavorite(deps.Favorites))                  // DELETE /favorites/:product_id
	}
}
