package handlers

import (
	"fmt"
	"log"

	"foodorder/internal/middleware"
	"foodorder/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes for authenticated callers.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/place", h.HandlePlaceOrder)
	orderRoutes.Get("/my", h.HandleGetMyOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Get("/:id/items", h.HandleGetOrderItems)
}

// RegisterAdminRoutes registers the privileged status transition route.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
}

// PlaceOrderRequest represents the request body for order placement.
type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
}

// HandlePlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing place order request body: %v", err)
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

	order, err := h.service.PlaceOrder(middleware.CallerEmail(c), req.DeliveryAddress)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetMyOrders returns the caller's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListByUserEmail(middleware.CallerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns one order, subject to the ownership check.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderSecure(c.Params("id"), middleware.CallerEmail(c), middleware.CallerIsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetOrderItems returns an order's items, subject to the ownership
// check.
func (h *OrderHandler) HandleGetOrderItems(c *fiber.Ctx) error {
	items, err := h.service.GetOrderItemsSecure(c.Params("id"), middleware.CallerEmail(c), middleware.CallerIsAdmin(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleUpdateOrderStatus transitions an order's status. The new status
// comes as a query parameter, e.g. PUT /orders/42/status?status=CONFIRMED.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status query parameter is required",
		})
	}

	order, err := h.service.UpdateStatus(c.Params("id"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(order)
}
