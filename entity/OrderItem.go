package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of one cart line at checkout time.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int   `json:"quantity"`
	UnitPrice int64 `json:"unitPrice"`
	Price     int64 `json:"price"`
}
