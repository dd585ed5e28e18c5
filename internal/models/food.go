package models

import "gorm.io/gorm"

// Food availability statuses. Status is display metadata maintained by the
// catalog; stock accounting relies on the Stock column alone.
const (
	FoodAvailable   = "AVAILABLE"
	FoodUnavailable = "UNAVAILABLE"
)

// Food represents a dish in the catalog.
type Food struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url"`
	Stock       int64   `json:"stock" validate:"gte=0"`
	Active      bool    `json:"active"`
	Status      string  `json:"status"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
