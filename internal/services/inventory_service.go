package services

import (
	"foodorder/internal/repositories"
)

// InventoryService is the stock ledger over the food catalog. Reserve and
// Release are single atomic steps in the underlying repository, so no two
// concurrent reservations can both pass a stale stock check. Construct it
// over a transaction-scoped repository to make reservations part of a
// larger atomic workflow.
type InventoryService struct {
	foodRepo repositories.FoodRepository
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(foodRepo repositories.FoodRepository) *InventoryService {
	return &InventoryService{
		foodRepo: foodRepo,
	}
}

// Reserve checks and decrements stock for a food in one atomic step. It
// fails with BadRequest when available stock is below qty, leaving stock
// unchanged.
func (s *InventoryService) Reserve(foodID string, qty int64) error {
	return s.foodRepo.ReserveStock(foodID, qty)
}

// Release returns previously reserved stock, used when an order is
// cancelled before delivery.
func (s *InventoryService) Release(foodID string, qty int64) error {
	return s.foodRepo.ReleaseStock(foodID, qty)
}
