package entity

import (
	"gorm.io/gorm"
)

// MenuItem is the source of truth for price. Cart and order lines snapshot
// the price at selection time and never re-read it.
type MenuItem struct {
	gorm.Model
	Title    string `gorm:"uniqueIndex;not null" json:"title"`
	Price    int64  `json:"price"`
	Featured bool   `json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
