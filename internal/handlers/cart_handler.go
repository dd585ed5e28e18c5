package handlers

import (
	"fmt"
	"log"

	"foodorder/internal/middleware"
	"foodorder/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the caller's cart.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes. All of them require an
// authenticated caller.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Get("/my", h.HandleGetMyCart)
	cartRoutes.Put("/update/:itemId", h.HandleUpdateItem)
	cartRoutes.Delete("/remove/:itemId", h.HandleRemoveItem)
	cartRoutes.Delete("/clear", h.HandleClearCart)
}

// CartRequest represents the request body for cart mutations.
type CartRequest struct {
	FoodID   string `json:"food_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// HandleAddToCart adds a food to the caller's cart, merging with an
// existing line for the same food.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req CartRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
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

	summary, err := h.service.AddToCart(middleware.CallerEmail(c), req.FoodID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleGetMyCart returns the caller's cart.
func (h *CartHandler) HandleGetMyCart(c *fiber.Ctx) error {
	summary, err := h.service.GetMyCart(middleware.CallerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleUpdateItem sets the quantity of one of the caller's cart lines.
// A non-positive quantity removes the line.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	summary, err := h.service.UpdateItem(c.Params("itemId"), middleware.CallerEmail(c), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleRemoveItem removes one of the caller's cart lines.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	summary, err := h.service.RemoveItem(c.Params("itemId"), middleware.CallerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// HandleClearCart empties the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.ClearCart(middleware.CallerEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
