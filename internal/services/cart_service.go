package services

import (
	"foodorder/internal/apperrors"
	"foodorder/internal/models"
	"foodorder/internal/repositories"
)

// CartSummary is the cart view returned after every cart mutation.
type CartSummary struct {
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount float64           `json:"total_amount"`
}

// CartService handles business logic for a user's pending cart lines.
type CartService struct {
	cartRepo repositories.CartRepository
	userRepo repositories.UserRepository
	foodRepo repositories.FoodRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, userRepo repositories.UserRepository, foodRepo repositories.FoodRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		userRepo: userRepo,
		foodRepo: foodRepo,
	}
}

// AddToCart adds qty of a food to the caller's cart. If the caller already
// holds a line for that food, the quantities merge; otherwise a new line is
// created with price and name snapshots from the current catalog record.
func (s *CartService) AddToCart(email, foodID string, qty int64) (*CartSummary, error) {
	if qty <= 0 {
		return nil, apperrors.BadRequest("quantity must be greater than zero")
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	food, err := s.foodRepo.GetByID(foodID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.GetByUserAndFood(user.ID, food.ID)
	switch {
	case err == nil:
		existing.Quantity += qty
		if err := s.cartRepo.Update(existing); err != nil {
			return nil, err
		}
	case apperrors.IsKind(err, apperrors.KindNotFound):
		item := &models.CartItem{
			UserID:   user.ID,
			FoodID:   food.ID,
			Quantity: qty,
			Price:    food.Price,
			FoodName: food.Name,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.buildSummary(user.ID)
}

// GetMyCart returns the caller's cart with line and cart totals.
func (s *CartService) GetMyCart(email string) (*CartSummary, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(user.ID)
}

// UpdateItem sets the quantity of a cart line owned by the caller. A
// quantity of zero or less removes the line instead of writing a
// non-positive value.
func (s *CartService) UpdateItem(itemID, email string, qty int64) (*CartSummary, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != user.ID {
		return nil, apperrors.Forbidden("cart item %s does not belong to caller", itemID)
	}

	if qty <= 0 {
		if err := s.cartRepo.Delete(item.ID); err != nil {
			return nil, err
		}
	} else {
		item.Quantity = qty
		if err := s.cartRepo.Update(item); err != nil {
			return nil, err
		}
	}

	return s.buildSummary(user.ID)
}

// RemoveItem deletes a cart line owned by the caller.
func (s *CartService) RemoveItem(itemID, email string) (*CartSummary, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.UserID != user.ID {
		return nil, apperrors.Forbidden("cart item %s does not belong to caller", itemID)
	}

	if err := s.cartRepo.Delete(item.ID); err != nil {
		return nil, err
	}
	return s.buildSummary(user.ID)
}

// ClearCart removes every line from the caller's cart. Clearing an empty
// cart is a no-op success.
func (s *CartService) ClearCart(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteByUserID(user.ID)
}

func (s *CartService) buildSummary(userID string) (*CartSummary, error) {
	items, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return &CartSummary{
		Items:       items,
		TotalItems:  len(items),
		TotalAmount: total,
	}, nil
}
