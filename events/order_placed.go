package events

import (
	"time"

	"github.com/ARNOB663/Food-Network/models"
)

type OrderPlaced struct {
	EventType string      `json:"eventType"`
	OrderRef  string      `json:"orderRef"`
	UserID    string      `json:"userId"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

type OrderLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// NewOrderPlaced builds the event from a stored order.
func NewOrderPlaced(order models.Order) OrderPlaced {
	evt := OrderPlaced{
		EventType: "order.placed",
		OrderRef:  order.OrderRef,
		UserID:    order.UserID,
		Total:     order.Total,
		Timestamp: time.Now().UTC(),
	}
	for _, item := range order.Items {
		evt.Items = append(evt.Items, OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return evt
}
