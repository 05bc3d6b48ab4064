package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Code  string `gorm:"uniqueIndex" json:"code"`
	Total int64  `json:"total"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus `gorm:"not null;default:0" json:"status"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
