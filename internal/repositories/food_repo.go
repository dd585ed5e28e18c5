package repositories

import (
	"foodorder/internal/models"
)

// FoodRepository defines the interface for food catalog data access.
// ReserveStock and ReleaseStock are the inventory ledger operations: each is
// a single atomic check-and-modify so two concurrent reservations can never
// both pass a stale stock check.
type FoodRepository interface {
	GetAll() ([]models.Food, error)
	GetByID(id string) (*models.Food, error)
	Create(food *models.Food) error
	Update(food *models.Food) error
	Delete(id string) error
	ReserveStock(id string, qty int64) error
	ReleaseStock(id string, qty int64) error
}
