package services

import (
	"log"
	"strings"
	"time"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
	"foodorder/internal/notifications"
	"foodorder/internal/repositories"
)

// PaymentService tracks mock payment attempts per order. Every initiation
// creates a fresh PENDING attempt; completion settles the most recent one
// and, on success, advances the order and clears the owner's cart in the
// same transaction.
type PaymentService struct {
	uow      repositories.UnitOfWork
	notifier notifications.Gateway
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(uow repositories.UnitOfWork, notifier notifications.Gateway) *PaymentService {
	return &PaymentService{
		uow:      uow,
		notifier: notifier,
	}
}

// Initiate creates a PENDING payment attempt for the caller's own order.
// Paying for another user's order fails with Forbidden. A failed earlier
// attempt is retried by initiating again, never by reopening it.
func (s *PaymentService) Initiate(orderID, email string) (*models.Payment, error) {
	user, err := s.uow.Users().GetByEmail(email)
	if err != nil {
		return nil, err
	}

	order, err := s.uow.Orders().GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, apperrors.Forbidden("not allowed to pay for this order")
	}

	payment := &models.Payment{
		OrderID:   order.ID,
		Amount:    order.TotalAmount,
		Mode:      "UPI",
		Status:    models.PaymentPending,
		CreatedAt: time.Now(),
	}
	if err := s.uow.Payments().Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Complete settles the most recent payment attempt for an order. It is
// called by the mock gateway callback, so it is not caller-scoped. A
// resultStatus of "PAID" (case-insensitive) marks the payment PAID, moves
// the order to PAID and clears the owning user's cart; anything else marks
// the payment FAILED and leaves the order untouched. An already settled
// attempt is never reopened.
func (s *PaymentService) Complete(orderID, resultStatus string) (*models.Payment, error) {
	var payment *models.Payment
	var order *models.Order

	err := s.uow.Do(func(r repositories.Repositories) error {
		var err error
		payment, err = r.Payments().GetLatestByOrderID(orderID)
		if err != nil {
			return err
		}
		if payment.Status != models.PaymentPending {
			return apperrors.BadRequest("payment %s is already %s", payment.ID, payment.Status)
		}

		if strings.EqualFold(resultStatus, string(models.PaymentPaid)) {
			now := time.Now()
			payment.Status = models.PaymentPaid
			payment.PaymentDate = &now

			order, err = r.Orders().GetByID(orderID)
			if err != nil {
				return err
			}
			order.Status = models.OrderPaid
			if order.StatusTimeline == nil {
				order.StatusTimeline = make(map[string]time.Time)
			}
			order.StatusTimeline[string(models.OrderPaid)] = now
			if err := r.Orders().Update(order); err != nil {
				return err
			}

			// The cart is normally already empty by this point; clearing
			// again keeps completion idempotent against stray lines.
			if err := r.Carts().DeleteByUserID(order.UserID); err != nil {
				return err
			}
		} else {
			payment.Status = models.PaymentFailed
		}

		return r.Payments().Update(payment)
	})
	if err != nil {
		return nil, err
	}

	if order != nil {
		if user, userErr := s.uow.Users().GetByID(order.UserID); userErr == nil {
			if err := s.notifier.PaymentCompleted(payment, user.Email); err != nil {
				log.Printf("Warning: failed to publish payment completed event for order %s: %v", orderID, err)
			}
		}
	}

	return payment, nil
}

// GetStatus returns the most recent payment attempt for an order.
func (s *PaymentService) GetStatus(orderID string) (*models.Payment, error) {
	return s.uow.Payments().GetLatestByOrderID(orderID)
}
