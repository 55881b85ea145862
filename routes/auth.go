package routes

import (
	"github.com/ARNOB663/Food-Network/auth"
	"github.com/ARNOB663/Food-Network/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the public signup/login endpoints plus the
// JWT-protected logout.
func SetupAuthRoutes(r *gin.Engine, d Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup(d.Identity)) // POST /auth/signup
		authGroup.POST("/login", auth.Login(d.Identity))   // POST /auth/login

		authGroup.POST("/logout",
			middleware.ValidateToken(d.Config.JWTSecret),
			auth.Logout(d.Identity)) // POST /auth/logout
	}
}
