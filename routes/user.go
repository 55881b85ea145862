package routes

import (
	cartControllers "github.com/ARNOB663/Food-Network/controllers/cart"
	productControllers "github.com/ARNOB663/Food-Network/controllers/product"
	userControllers "github.com/ARNOB663/Food-Network/controllers/user"
	"github.com/ARNOB663/Food-Network/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, d Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(d.Config.JWTSecret))
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(d.Identity))    // GET /user/
		userGroup.PUT("/", userControllers.UpdateUser(d.Identity)) // PUT /user/

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(d.Carts))                                // GET /user/cart
			cartGroup.POST("/", cartControllers.AddToCart(d.Carts, d.Catalog, d.Notifier))      // POST /user/cart
			cartGroup.PUT("/:product_id", cartControllers.UpdateQuantity(d.Carts))              // PUT /user/cart/:product_id
			cartGroup.DELETE("/:product_id", cartControllers.RemoveItem(d.Carts))               // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(d.Carts))                           // DELETE /user/cart
		}
		userGroup.POST("/checkout", cartControllers.Checkout(d.DB, d.Carts, d.Publisher, d.Notifier)) // POST /user/checkout

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(d.Catalog))        // GET /user/products
		userGroup.GET("/products/:id", productControllers.GetProductByID(d.Catalog)) // GET /user/products/:id
		userGroup.GET("/categories", productControllers.GetCategories(d.Catalog))    // GET /user/categories
	}
}
