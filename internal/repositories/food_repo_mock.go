package repositories

import (
	"sync"

	"github.com/google/uuid"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
)

// MockFoodRepository is an in-memory implementation of FoodRepository.
// Stock operations hold the mutex across the check and the write, matching
// the atomicity contract of the GORM implementation.
type MockFoodRepository struct {
	foods map[string]models.Food
	mu    sync.RWMutex
}

// NewMockFoodRepository creates a new instance of MockFoodRepository.
func NewMockFoodRepository() *MockFoodRepository {
	return &MockFoodRepository{
		foods: make(map[string]models.Food),
	}
}

// GetAll returns all foods.
func (r *MockFoodRepository) GetAll() ([]models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	foodList := make([]models.Food, 0, len(r.foods))
	for _, food := range r.foods {
		foodList = append(foodList, food)
	}
	return foodList, nil
}

// GetByID returns a food by its ID.
func (r *MockFoodRepository) GetByID(id string) (*models.Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	food, ok := r.foods[id]
	if !ok {
		return nil, apperrors.NotFound("food with ID %s not found", id)
	}
	return &food, nil
}

// Create adds a new food.
func (r *MockFoodRepository) Create(food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	if food.Status == "" {
		food.Status = models.FoodAvailable
	}
	r.foods[food.ID] = *food
	return nil
}

// Update replaces an existing food.
func (r *MockFoodRepository) Update(food *models.Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[food.ID]; !ok {
		return apperrors.NotFound("food with ID %s not found for update", food.ID)
	}
	r.foods[food.ID] = *food
	return nil
}

// Delete removes a food by its ID.
func (r *MockFoodRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.foods[id]; !ok {
		return apperrors.NotFound("food with ID %s not found for deletion", id)
	}
	delete(r.foods, id)
	return nil
}

// ReserveStock atomically checks and decrements stock.
func (r *MockFoodRepository) ReserveStock(id string, qty int64) error {
	if qty <= 0 {
		return apperrors.BadRequest("reservation quantity must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	food, ok := r.foods[id]
	if !ok {
		return apperrors.NotFound("food with ID %s not found", id)
	}
	if food.Stock < qty {
		return apperrors.BadRequest("insufficient stock for %s (requested: %d, available: %d)", food.Name, qty, food.Stock)
	}
	food.Stock -= qty
	r.foods[id] = food
	return nil
}

// ReleaseStock returns qty units to stock.
func (r *MockFoodRepository) ReleaseStock(id string, qty int64) error {
	if qty <= 0 {
		return apperrors.BadRequest("release quantity must be positive")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	food, ok := r.foods[id]
	if !ok {
		return apperrors.NotFound("food with ID %s not found", id)
	}
	food.Stock += qty
	r.foods[id] = food
	return nil
}
