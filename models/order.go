package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef  string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID    string      `gorm:"index;not null" json:"user_id"`
	Status    OrderStatus `gorm:"not null" json:"status"`
	Total     float64     `gorm:"not null" json:"total"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"-"`
	ProductID   string  `gorm:"not null" json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
