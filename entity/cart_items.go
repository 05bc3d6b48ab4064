package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending line per (user, menu item). UnitPrice is snapshotted
// when the line is created; Price = UnitPrice * Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"index:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"`
}
