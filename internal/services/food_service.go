package services

import (
	"foodorder/internal/models"
	"foodorder/internal/repositories"
)

// FoodService handles business logic related to the food catalog.
type FoodService struct {
	repo repositories.FoodRepository
}

// NewFoodService creates a new FoodService.
func NewFoodService(repo repositories.FoodRepository) *FoodService {
	return &FoodService{
		repo: repo,
	}
}

// GetAllFoods retrieves all foods.
func (s *FoodService) GetAllFoods() ([]models.Food, error) {
	return s.repo.GetAll()
}

// GetFoodByID retrieves a single food by its ID.
func (s *FoodService) GetFoodByID(id string) (*models.Food, error) {
	return s.repo.GetByID(id)
}

// CreateFood creates a new food. New foods default to active and available.
func (s *FoodService) CreateFood(food *models.Food) error {
	food.Active = true
	if food.Status == "" {
		food.Status = models.FoodAvailable
	}
	return s.repo.Create(food)
}

// UpdateFood updates an existing food.
func (s *FoodService) UpdateFood(food *models.Food) error {
	return s.repo.Update(food)
}

// DeleteFood deletes a food by its ID.
func (s *FoodService) DeleteFood(id string) error {
	return s.repo.Delete(id)
}
