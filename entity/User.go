package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleManager  = "manager"
	RoleDelivery = "delivery"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}

// IsManager covers the seeded admin as well; admin passes every manager gate.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func (u *User) IsDeliveryCrew() bool {
	return u.Role == RoleDelivery
}
