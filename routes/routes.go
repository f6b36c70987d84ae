package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/services"
)

// Deps bundles the services the route groups are wired with.
type Deps struct {
	Cart      *services.CartService
	Favorites *services.FavoritesService
	Catalog   *services.CatalogService
	Checkout  *services.CheckoutService
}

// SetupRoutes is the single entry-point that wires up the product, cart,
// favorites and checkout route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupProductRoutes(r, deps)

	SetupCartRoutes(r, deps)

	SetupFavoriteRoutes(r, deps)

	SetupCheckoutRoutes(r, deps)
}
