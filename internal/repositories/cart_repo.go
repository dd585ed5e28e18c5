package repositories

import "foodorder/internal/models"

// CartRepository defines the interface for cart line data access.
type CartRepository interface {
	GetByUserID(userID string) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	GetByUserAndFood(userID, foodID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(id string) error
	DeleteByUserID(userID string) error
}
