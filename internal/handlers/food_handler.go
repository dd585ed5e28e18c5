package handlers

import (
	"fmt"
	"log"

	"foodorder/internal/models"
	"foodorder/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FoodHandler handles HTTP requests for the food catalog.
type FoodHandler struct {
	service  *services.FoodService
	validate *validator.Validate
}

// NewFoodHandler creates a new FoodHandler.
func NewFoodHandler(service *services.FoodService) *FoodHandler {
	return &FoodHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public read routes.
func (h *FoodHandler) RegisterRoutes(router fiber.Router) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Get("/", h.HandleGetFoods)
	foodRoutes.Get("/:id", h.HandleGetFoodByID)
}

// RegisterAdminRoutes registers the catalog write routes.
func (h *FoodHandler) RegisterAdminRoutes(router fiber.Router) {
	foodRoutes := router.Group("/foods")
	foodRoutes.Post("/", h.HandleCreateFood)
	foodRoutes.Put("/:id", h.HandleUpdateFood)
	foodRoutes.Delete("/:id", h.HandleDeleteFood)
}

// HandleGetFoods retrieves all foods.
func (h *FoodHandler) HandleGetFoods(c *fiber.Ctx) error {
	foods, err := h.service.GetAllFoods()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(foods)
}

// HandleGetFoodByID retrieves a single food by its ID.
func (h *FoodHandler) HandleGetFoodByID(c *fiber.Ctx) error {
	food, err := h.service.GetFoodByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(food)
}

// HandleCreateFood creates a new food.
func (h *FoodHandler) HandleCreateFood(c *fiber.Ctx) error {
	var food models.Food
	if err := c.BodyParser(&food); err != nil {
		log.Printf("Error parsing food request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(food); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if err := h.service.CreateFood(&food); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// HandleUpdateFood updates an existing food.
func (h *FoodHandler) HandleUpdateFood(c *fiber.Ctx) error {
	var food models.Food
	if err := c.BodyParser(&food); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	food.ID = c.Params("id")

	if err := h.service.UpdateFood(&food); err != nil {
		return respondError(c, err)
	}
	return c.JSON(food)
}

// HandleDeleteFood deletes a food by its ID.
func (h *FoodHandler) HandleDeleteFood(c *fiber.Ctx) error {
	if err := h.service.DeleteFood(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Food deleted successfully",
	})
}
