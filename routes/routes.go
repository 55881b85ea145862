package routes

import (
	"github.com/ARNOB663/Food-Network/cart"
	"github.com/ARNOB663/Food-Network/catalog"
	cartControllers "github.com/ARNOB663/Food-Network/controllers/cart"
	notificationControllers "github.com/ARNOB663/Food-Network/controllers/notification"
	"github.com/ARNOB663/Food-Network/identity"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/ARNOB663/Food-Network/pkg/config"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps bundles the services the route groups wire handlers against.
type Deps struct {
	DB        *gorm.DB
	Config    config.Config
	Catalog   *catalog.Service
	Carts     *cart.Registry
	Identity  *identity.Service
	Notifier  *notify.Emitter
	Publisher cartControllers.EventPublisher
}

// SetupRoutes is the single entry point that wires up Auth, User and Admin
// route groups plus the notification websocket.
func SetupRoutes(r *gin.Engine, d Deps) {
	SetupAuthRoutes(r, d)
	SetupUserRoutes(r, d)
	SetupAdminRoutes(r, d)

	hub := notificationControllers.NewHub(d.Notifier)
	r.GET("/ws/notifications", hub.Handler)
}
