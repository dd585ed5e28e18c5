package repositories

import (
	"foodorder/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// created with their items in one step and never deleted.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetItems(orderID string) ([]models.OrderItem, error)
	GetByUserID(userID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	Update(order *models.Order) error
	Count() (int64, error)
	TotalRevenue() (float64, error)
}
