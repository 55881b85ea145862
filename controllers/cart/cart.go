package cartControllers

import (
	"fmt"
	"net/http"

	"github.com/ARNOB663/Food-Network/cart"
	"github.com/ARNOB663/Food-Network/catalog"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/gin-gonic/gin"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartView is the JSON shape for every cart response.
func cartView(m *cart.Manager) gin.H {
	return gin.H{
		"items":       m.Lines(),
		"total_items": m.TotalItems(),
		"total_price": m.TotalPrice(),
	}
}

func userID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GET /user/cart
func GetCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartView(carts.ForUser(uid)))
	}
}

// POST /user/cart
//
// Stock-exceeding adds are silently rejected: the response is still 200, the
// cart simply comes back unchanged.
func AddToCart(carts *cart.Registry, products *catalog.Service, notifier *notify.Emitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		product, found := products.GetProductByID(c.Request.Context(), input.ProductID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
			return
		}

		m := carts.ForUser(uid)
		before := m.TotalItems()
		m.AddToCart(product, quantity)
		if m.TotalItems() > before {
			notifier.Success(fmt.Sprintf("%d %s added to cart", quantity, product.Name))
		}

		c.JSON(http.StatusOK, cartView(m))
	}
}

// PUT /user/cart/:product_id
func UpdateQuantity(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		m := carts.ForUser(uid)
		m.UpdateQuantity(c.Param("product_id"), *input.Quantity)
		c.JSON(http.StatusOK, cartView(m))
	}
}

// DELETE /user/cart/:product_id
func RemoveItem(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		m := carts.ForUser(uid)
		m.RemoveFromCart(c.Param("product_id"))
		c.JSON(http.StatusOK, cartView(m))
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		m := carts.ForUser(uid)
		m.ClearCart()
		c.JSON(http.StatusOK, cartView(m))
	}
}
