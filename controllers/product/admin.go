package productControllers

import (
	"net/http"

	"github.com/ARNOB663/Food-Network/catalog"
	"github.com/ARNOB663/Food-Network/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Stock       int     `json:"stock" binding:"min=0"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        input.Name,
			Price:       input.Price,
			Image:       input.Image,
			Category:    input.Category,
			Description: input.Description,
			Stock:       input.Stock,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// POST /admin/products/seed
func SeedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := catalog.Reseed(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reseed products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Catalog reseeded", "count": len(catalog.SampleProducts)})
	}
}
