package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ARNOB663/Food-Network/cart"
	"github.com/ARNOB663/Food-Network/events"
	"github.com/ARNOB663/Food-Network/models"
	"github.com/ARNOB663/Food-Network/notify"
	"github.com/ARNOB663/Food-Network/pkg/logx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventPublisher decouples checkout from the broker wiring; a nil publisher
// skips the event.
type EventPublisher interface {
	PublishOrderPlaced(evt events.OrderPlaced) error
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /user/checkout
//
// Places an order from the current cart inside one transaction with
// row-locked stock deduction, then clears the cart and publishes an
// order-placed event. The event and the notification are best-effort.
func Checkout(db *gorm.DB, carts *cart.Registry, publisher EventPublisher, notifier *notify.Emitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, ok := userID(c)
		if !ok {
			return
		}

		m := carts.ForUser(uid)
		lines := m.Lines()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			OrderRef: generateOrderRef(),
			UserID:   uid,
			Status:   models.OrderStatusPending,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, line := range lines {
				var product models.Product
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&product, "id = ?", line.Product.ID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return errors.New("product no longer available: " + line.Product.Name)
					}
					return err
				}
				if product.Stock < line.Quantity {
					return errors.New("insufficient stock for " + product.Name)
				}

				product.Stock -= line.Quantity
				if err := tx.Save(&product).Error; err != nil {
					return err
				}

				order.Items = append(order.Items, models.OrderItem{
					ProductID:   product.ID,
					ProductName: product.Name,
					UnitPrice:   product.Price,
					Quantity:    line.Quantity,
				})
				order.Total += product.Price * float64(line.Quantity)
			}
			return tx.Create(&order).Error
		})
		if err != nil {
			notifier.Error("Checkout failed: " + err.Error())
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		m.ClearCart()

		if publisher != nil {
			if err := publisher.PublishOrderPlaced(events.NewOrderPlaced(order)); err != nil {
				logx.Error().Err(err).Str("order_ref", order.OrderRef).Msg("failed to publish order event")
			}
		}
		notifier.Success("Order placed successfully!")

		c.JSON(http.StatusCreated, order)
	}
}
