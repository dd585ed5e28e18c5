package handlers

import (
	"foodorder/internal/middleware"
	"foodorder/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for the mock payment workflow.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes for authenticated callers.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment")
	paymentRoutes.Post("/initiate/:orderId", h.HandleInitiate)
	paymentRoutes.Get("/status/:orderId", h.HandleGetStatus)
}

// RegisterAdminRoutes registers the mock gateway callback. In a real
// deployment this would be the gateway's signed webhook; here it is
// admin-gated.
func (h *PaymentHandler) RegisterAdminRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payment")
	paymentRoutes.Put("/complete/:orderId", h.HandleComplete)
}

// HandleInitiate creates a PENDING payment attempt for the caller's order.
func (h *PaymentHandler) HandleInitiate(c *fiber.Ctx) error {
	payment, err := h.service.Initiate(c.Params("orderId"), middleware.CallerEmail(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(payment)
}

// HandleComplete settles the latest payment attempt for an order, e.g.
// PUT /payment/complete/42?status=PAID.
func (h *PaymentHandler) HandleComplete(c *fiber.Ctx) error {
	status := c.Query("status")
	if status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status query parameter is required",
		})
	}

	payment, err := h.service.Complete(c.Params("orderId"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}

// HandleGetStatus returns the latest payment attempt for an order.
func (h *PaymentHandler) HandleGetStatus(c *fiber.Ctx) error {
	payment, err := h.service.GetStatus(c.Params("orderId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(payment)
}
