package productControllers

import (
	"net/http"

	"github.com/ARNOB663/Food-Network/catalog"
	"github.com/gin-gonic/gin"
)

// GET /user/products?search=&category=
// The catalog layer never fails outward, so these handlers have no error
// branch: an unreachable source quietly degrades to the sample set.
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if term := c.Query("search"); term != "" {
			c.JSON(http.StatusOK, svc.SearchProducts(c.Request.Context(), term))
			return
		}
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, svc.GetProductsByCategory(c.Request.Context(), category))
			return
		}
		c.JSON(http.StatusOK, svc.GetAllProducts(c.Request.Context()))
	}
}

// GET /user/products/:id
func GetProductByID(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, ok := svc.GetProductByID(c.Request.Context(), id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /user/categories
func GetCategories(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": svc.Categories(c.Request.Context())})
	}
}
