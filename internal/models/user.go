package models

import "gorm.io/gorm"

// User roles. Admins bypass order ownership checks.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User account statuses settable through the admin surface.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User represents a customer or administrator account.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag, handlers blank it before responding
	Role       string `json:"role"`
	Active     bool   `json:"active"`
	Status     string `json:"status"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Pincode    string `json:"pincode"`
	Phone      string `json:"phone"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
