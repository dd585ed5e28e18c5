package repositories

import (
	"sync"

	"github.com/google/uuid"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
)

// MockPaymentRepository is an in-memory implementation of PaymentRepository.
// Insertion order stands in for the created-at ordering of the GORM
// implementation, which keeps "latest" stable even when attempts are
// created within the same timestamp tick.
type MockPaymentRepository struct {
	payments []models.Payment
	mu       sync.RWMutex
}

// NewMockPaymentRepository creates a new instance of MockPaymentRepository.
func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{}
}

// Create adds a new payment attempt.
func (r *MockPaymentRepository) Create(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	r.payments = append(r.payments, *payment)
	return nil
}

// Update replaces an existing payment attempt.
func (r *MockPaymentRepository) Update(payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.payments {
		if r.payments[i].ID == payment.ID {
			r.payments[i] = *payment
			return nil
		}
	}
	return apperrors.NotFound("payment with ID %s not found for update", payment.ID)
}

// GetLatestByOrderID returns the most recently created payment for an order.
func (r *MockPaymentRepository) GetLatestByOrderID(orderID string) (*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.payments) - 1; i >= 0; i-- {
		if r.payments[i].OrderID == orderID {
			p := r.payments[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("payment for order %s not found", orderID)
}
