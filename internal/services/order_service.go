package services

import (
	"log"
	"time"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
	"foodorder/internal/notifications"
	"foodorder/internal/repositories"
)

// OrderService orchestrates the order placement and fulfillment workflow.
// Placement converts a cart into an order in one transaction; status
// transitions append to the order's timeline and trigger best-effort
// notifications.
type OrderService struct {
	uow      repositories.UnitOfWork
	guard    *AccessGuard
	notifier notifications.Gateway
}

// NewOrderService creates a new OrderService.
func NewOrderService(uow repositories.UnitOfWork, guard *AccessGuard, notifier notifications.Gateway) *OrderService {
	return &OrderService{
		uow:      uow,
		guard:    guard,
		notifier: notifier,
	}
}

// PlaceOrder converts the caller's cart into an order. Inside a single
// transaction it reserves stock per line (fail-fast: the first
// insufficient-stock line rolls back every reservation already made),
// creates the order with immutable item snapshots and clears the cart.
// The placed notification goes out after commit and never fails the call.
func (s *OrderService) PlaceOrder(email, deliveryAddress string) (*models.Order, error) {
	user, err := s.uow.Users().GetByEmail(email)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.uow.Do(func(r repositories.Repositories) error {
		cartItems, err := r.Carts().GetByUserID(user.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return apperrors.BadRequest("cart is empty")
		}

		inventory := NewInventoryService(r.Foods())
		now := time.Now()
		var total float64
		var items []models.OrderItem

		for _, cartItem := range cartItems {
			food, err := r.Foods().GetByID(cartItem.FoodID)
			if err != nil {
				return err
			}
			if err := inventory.Reserve(food.ID, cartItem.Quantity); err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				FoodID:      food.ID,
				Quantity:    cartItem.Quantity,
				Price:       food.Price,
				ProductName: food.Name,
				ImageURL:    food.ImageURL,
			})
			total += food.Price * float64(cartItem.Quantity)
		}

		order = &models.Order{
			UserID:          user.ID,
			Status:          models.OrderPlaced,
			TotalAmount:     total,
			OrderDate:       now,
			DeliveryAddress: deliveryAddress,
			StatusTimeline:  map[string]time.Time{string(models.OrderPlaced): now},
			Items:           items,
		}
		if err := r.Orders().Create(order); err != nil {
			return err
		}

		return r.Carts().DeleteByUserID(user.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.OrderPlaced(order, user.Email); err != nil {
		log.Printf("Warning: failed to publish order placed event for order %s: %v", order.ID, err)
	}

	return order, nil
}

// UpdateStatus transitions an order to the status named by label. Intended
// for privileged callers; the transport layer enforces the role. Terminal
// orders (DELIVERED, CANCELLED) reject further changes. Cancelling returns
// reserved stock to the inventory in the same transaction.
func (s *OrderService) UpdateStatus(orderID, label string) (*models.Order, error) {
	status, err := models.ParseOrderStatus(label)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.uow.Do(func(r repositories.Repositories) error {
		var err error
		order, err = r.Orders().GetByID(orderID)
		if err != nil {
			return err
		}
		if order.Status.IsTerminal() {
			return apperrors.BadRequest("order %s is %s and can no longer change status", order.ID, order.Status)
		}

		if status == models.OrderCancelled {
			inventory := NewInventoryService(r.Foods())
			for _, item := range order.Items {
				if err := inventory.Release(item.FoodID, item.Quantity); err != nil {
					return err
				}
			}
		}

		order.Status = status
		if order.StatusTimeline == nil {
			order.StatusTimeline = make(map[string]time.Time)
		}
		order.StatusTimeline[string(status)] = time.Now()

		return r.Orders().Update(order)
	})
	if err != nil {
		return nil, err
	}

	if user, userErr := s.uow.Users().GetByID(order.UserID); userErr == nil {
		if err := s.notifier.OrderStatusChanged(order, user.Email, string(status)); err != nil {
			log.Printf("Warning: failed to publish status change event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrderSecure returns an order after an ownership check. Non-privileged
// callers asking for another user's order get NotFound, never the data.
func (s *OrderService) GetOrderSecure(orderID, email string, privileged bool) (*models.Order, error) {
	order, err := s.uow.Orders().GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if privileged {
		return order, nil
	}

	user, err := s.uow.Users().GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if err := s.guard.CanView(order, user.ID, privileged); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrderItemsSecure returns an order's items after the same ownership
// check as GetOrderSecure.
func (s *OrderService) GetOrderItemsSecure(orderID, email string, privileged bool) ([]models.OrderItem, error) {
	if _, err := s.GetOrderSecure(orderID, email, privileged); err != nil {
		return nil, err
	}
	return s.uow.Orders().GetItems(orderID)
}

// ListByUserEmail returns the caller's own orders, newest first.
func (s *OrderService) ListByUserEmail(email string) ([]models.Order, error) {
	user, err := s.uow.Users().GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.uow.Orders().GetByUserID(user.ID)
}

// ListAll returns every order. Privileged callers only.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.uow.Orders().GetAll()
}
