package models

import "gorm.io/gorm"

// CartItem is a pending (food, quantity) selection owned by one user.
// There is at most one row per (user, food); adding the same food again
// merges into the existing row. Price and FoodName are snapshots taken
// when the line is created.
type CartItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string  `json:"user_id" gorm:"index;type:varchar(36)"`
	FoodID     string  `json:"food_id" gorm:"type:varchar(36)"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	FoodName   string  `json:"food_name"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
