package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/junaidrashid-git/storefront-api/services"
)

// GET /products
func GetProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.Err(); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":    "Catalog unavailable: " + err.Error(),
				"products": []services.AnnotatedProduct{},
			})
			return
		}

		search := c.Query("search")
		category := c.DefaultQuery("category", services.AllCategories)
		sortBy := c.DefaultQuery("sort_by", services.SortDefault)

		c.JSON(http.StatusOK, gin.H{
			"products": catalog.Filter(search, category, sortBy),
		})
	}
}

// GET /products/:id
func GetProductByID(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product, err := catalog.Get(productID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// GET /products/categories
func GetCategories(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories()})
	}
}

// POST /products/refresh
func RefreshCatalog(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.Reload(c.Request.Context()); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to refresh catalog: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count":      catalog.Count(),
			"categories": catalog.Categories(),
		})
	}
}
