package routes

import (
	productControllers "github.com/ARNOB663/Food-Network/controllers/product"
	"github.com/ARNOB663/Food-Network/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the API-key-protected catalog management
// endpoints.
func SetupAdminRoutes(r *gin.Engine, d Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(d.Config.AdminAPIKey))
	{
		adminGroup.POST("/products", productControllers.CreateProduct(d.DB))             // POST /admin/products
		adminGroup.POST("/products/seed", productControllers.SeedProducts(d.DB))         // POST /admin/products/seed
		adminGroup.GET("/products/export", productControllers.ExportProductsToExcel(d.Catalog)) // GET /admin/products/export
	}
}
