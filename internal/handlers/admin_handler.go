package handlers

import (
	"foodorder/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the privileged dashboard and user management routes.
type AdminHandler struct {
	dashboardService *services.DashboardService
	userService      *services.UserService
	orderService     *services.OrderService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(dashboardService *services.DashboardService, userService *services.UserService, orderService *services.OrderService) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		userService:      userService,
		orderService:     orderService,
	}
}

// RegisterRoutes registers the admin routes. The router must already be
// gated by AdminRequired.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	adminRoutes := router.Group("/admin")
	adminRoutes.Get("/dashboard", h.HandleDashboard)
	adminRoutes.Get("/orders", h.HandleGetAllOrders)
	adminRoutes.Get("/users", h.HandleGetUsers)
	adminRoutes.Put("/users/:id/status", h.HandleUpdateUserStatus)
}

// HandleDashboard returns the admin rollup figures.
func (h *AdminHandler) HandleDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboardData()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

// HandleGetAllOrders returns every order in the system.
func (h *AdminHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetUsers returns all user accounts.
func (h *AdminHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	for i := range users {
		users[i].Password = ""
	}
	return c.JSON(users)
}

// HandleUpdateUserStatus toggles an account between active and inactive.
func (h *AdminHandler) HandleUpdateUserStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateUserStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}
