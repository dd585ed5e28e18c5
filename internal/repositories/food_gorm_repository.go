package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/apperrors"
	"foodorder/internal/models"
)

// GORMFoodRepository is a GORM implementation of FoodRepository.
type GORMFoodRepository struct {
	db *gorm.DB
}

// NewGORMFoodRepository creates a new instance of GORMFoodRepository.
func NewGORMFoodRepository(db *gorm.DB) *GORMFoodRepository {
	return &GORMFoodRepository{
		db: db,
	}
}

// GetAll retrieves all foods from the database.
func (r *GORMFoodRepository) GetAll() ([]models.Food, error) {
	var foods []models.Food
	if err := r.db.Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("failed to get all foods: %w", err)
	}
	return foods, nil
}

// GetByID retrieves a single food by its ID from the database.
func (r *GORMFoodRepository) GetByID(id string) (*models.Food, error) {
	var food models.Food
	if err := r.db.First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get food by ID %s: %w", id, err)
	}
	return &food, nil
}

// Create creates a new food in the database.
func (r *GORMFoodRepository) Create(food *models.Food) error {
	if food.ID == "" {
		food.ID = uuid.New().String()
	}
	if food.Status == "" {
		food.Status = models.FoodAvailable
	}
	if err := r.db.Create(food).Error; err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}
	return nil
}

// Update updates an existing food in the database.
func (r *GORMFoodRepository) Update(food *models.Food) error {
	res := r.db.Save(food) // Save will update all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update food: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("food with ID %s not found for update", food.ID)
	}
	return nil
}

// Delete deletes a food by its ID from the database.
func (r *GORMFoodRepository) Delete(id string) error {
	res := r.db.Delete(&models.Food{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete food: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("food with ID %s not found for deletion", id)
	}
	return nil
}

// ReserveStock decrements stock by qty in a single conditional UPDATE.
// The WHERE clause carries the stock check, so a stale read can never let
// two reservations both succeed past the available stock.
func (r *GORMFoodRepository) ReserveStock(id string, qty int64) error {
	if qty <= 0 {
		return apperrors.BadRequest("reservation quantity must be positive")
	}
	res := r.db.Model(&models.Food{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to reserve stock for food %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing food from an insufficient balance.
		food, err := r.GetByID(id)
		if err != nil {
			return err
		}
		return apperrors.BadRequest("insufficient stock for %s (requested: %d, available: %d)", food.Name, qty, food.Stock)
	}
	return nil
}

// ReleaseStock returns qty units to stock, used when a reservation is
// undone by cancellation.
func (r *GORMFoodRepository) ReleaseStock(id string, qty int64) error {
	if qty <= 0 {
		return apperrors.BadRequest("release quantity must be positive")
	}
	res := r.db.Model(&models.Food{}).
		Where("id = ?", id).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return fmt.Errorf("failed to release stock for food %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("food with ID %s not found", id)
	}
	return nil
}
