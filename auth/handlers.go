package auth

import (
	"net/http"

	"github.com/ARNOB663/Food-Network/identity"
	"github.com/gin-gonic/gin"
)

type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /auth/signup
//
// Field validation happens inside the identity service so the response is
// always the same {success, error} shape, never a binding error.
func Signup(ids *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SignupInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
			return
		}

		result := ids.Signup(c.Request.Context(), input.Name, input.Email, input.Password)
		if !result.Success {
			c.JSON(http.StatusBadRequest, result)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}

// POST /auth/login
func Login(ids *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request payload"})
			return
		}

		result := ids.Login(c.Request.Context(), input.Email, input.Password)
		if !result.Success {
			c.JSON(http.StatusUnauthorized, result)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// POST /auth/logout (JWT protected)
//
// Clears the persisted cart before the session is considered ended, so the
// next login on the same device starts from an empty cart.
func Logout(ids *identity.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get("user_id")
		uid, ok := val.(string)
		if !exists || !ok || uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ids.Logout(c.Request.Context(), uid)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
