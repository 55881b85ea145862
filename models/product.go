package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Image       string  `json:"image"`
	Category    string  `gorm:"index;not null" json:"category"`
	Description string  `json:"description"`
	Stock       int     `gorm:"not null" json:"stock"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
