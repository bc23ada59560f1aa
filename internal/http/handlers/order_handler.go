package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/services"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// History lists the current user's orders, newest first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	orders := h.Orders.List()
	return render(c, "orders", fiber.Map{
		"Orders": orders,
		"Empty":  len(orders) == 0,
	})
}
