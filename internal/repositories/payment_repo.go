package repositories

import "foodorder/internal/models"

// PaymentRepository defines the interface for payment attempt data access.
// The current payment for an order is the most recently created row, found
// with an explicit latest-by-timestamp query.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	GetLatestByOrderID(orderID string) (*models.Payment, error)
}
