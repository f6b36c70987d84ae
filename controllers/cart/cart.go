package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/services"
)

// CartItemInput is the add-to-cart request body. Quantity defaults to 1 when
// omitted.
type CartItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

// QuantityInput is the set-quantity request body.
type QuantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Reload from storage so writes made through other screens are seen
		if err := svc.Refresh(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  svc.Items(),
			"totals": svc.Totals(),
		})
	}
}

// POST /cart
func AddCartItem(svc *services.CartService, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		product, err := catalog.Get(input.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		// Stock check lives here, not in the ledger
		if input.Quantity > product.Stock {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock"})
			return
		}

		if err := svc.AddItem(c.Request.Context(), product.Product, input.Quantity); err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  svc.Items(),
			"totals": svc.Totals(),
		})
	}
}

// PUT /cart/:product_id
func UpdateCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := svc.SetQuantity(c.Request.Context(), productID, input.Quantity); err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  svc.Items(),
			"totals": svc.Totals(),
		})
	}
}

// DELETE /cart/:product_id
func DeleteCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		if err := svc.RemoveItem(c.Request.Context(), productID); err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  svc.Items(),
			"totals": svc.Totals(),
		})
	}
}

// DELETE /cart
func ClearCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context()); err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /cart/:product_id/favorite
func MoveToFavorites(svc *services.CartService, favorites *services.FavoritesService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		if err := svc.MoveToFavorites(c.Request.Context(), productID, favorites); err != nil {
			respondCartError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":  svc.Items(),
			"totals": svc.Totals(),
		})
	}
}

func productIDParam(c *gin.Context) (int, bool) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return 0, false
	}
	return productID, true
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case models.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "Storage failure: " + err.Error()})
	}
}
