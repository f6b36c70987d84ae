package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/junaidrashid-git/storefront-api/controllers/product"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("/", productcontroller.GetProducts(deps.Catalog))             // GET /products
		productGroup.GET("/categories", productcontroller.GetCategories(deps.Catalog)) // GET /products/categories
		productGroup.POST("/refresh", productcontroller.RefreshCatalog(deps.Catalog))  // POST /products/refresh
		productGroup.GET("/:id", productcontroller.GetProductByID(deps.Catalog))       // GET /products/:id
	}
}
