package favoriteControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// ToggleInput is the toggle-favorite request body.
type ToggleInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

// GET /favorites
func GetFavorites(svc *services.FavoritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Reload from storage so writes made through other screens are seen
		if err := svc.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load favorites"})
			return
		}

		search := c.Query("search")
		sortOrder := c.DefaultQuery("sort", "newest")

		c.JSON(http.StatusOK, gin.H{
			"favorites": svc.FilterSorted(search, sortOrder),
			"count":     svc.Count(),
		})
	}
}

// POST /favorites/toggle
func ToggleFavorite(svc *services.FavoritesService, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		favorited, err := svc.Toggle(c.Request.Context(), product.Product)
		if err != nil {
			respondFavoriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"favorited": favorited})
	}
}

// POST /favorites/:product_id/cart
//
// Adds one unit of a favorited product to the cart. The favorite entry is
// kept.
func AddFavoriteToCart(svc *services.FavoritesService, cart *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := favoriteIDParam(c)
		if !ok {
			return
		}

		entry, err := svc.Get(productID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		if err := cart.AddItem(c.Request.Context(), entry.Product, 1); err != nil {
			respondFavoriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  cart.Items(),
			"totals": cart.Totals(),
		})
	}
}

// DELETE /favorites/:product_id
func RemoveFavorite(svc *services.FavoritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := favoriteIDParam(c)
		if !ok {
			return
		}

		if err := svc.Remove(c.Request.Context(), productID); err != nil {
			respondFavoriteError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": svc.Count()})
	}
}

func favoriteIDParam(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return productID, true
}

func respondFavoriteError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Storage failure: " + err.Error()})
	}
}
