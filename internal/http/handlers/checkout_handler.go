package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopfront/internal/domain"
	"shopfront/internal/log"
	"shopfront/internal/services"
)

type CheckoutHandler struct {
	Cart     *services.CartService
	Checkout *services.CheckoutService
	Tokens   *services.TokenIssuer
}

// Show renders the checkout form. Opening the form issues a fresh
// single-use token; any previously issued token stops validating here.
func (h *CheckoutHandler) Show(c *fiber.Ctx) error {
	lines, subtotal := h.Cart.Totals()
	return render(c, "checkout", fiber.Map{
		"Lines":    lines,
		"Subtotal": domain.FormatCents(subtotal),
		"Empty":    len(lines) == 0,
		"Token":    h.Tokens.Issue(),
		"Err":      "",
	})
}

func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	sid := ensureSID(c)

	form := services.ShippingForm{
		Name:    c.FormValue("name"),
		Address: c.FormValue("address"),
		City:    c.FormValue("city"),
		Zip:     c.FormValue("zip"),
		Phone:   c.FormValue("phone"),
	}

	order, err := h.Checkout.Place(c.FormValue("token"), form)
	if err != nil {
		if errors.Is(err, services.ErrNotLoggedIn) {
			return c.Redirect("/login")
		}
		msg := "Could not place your order. Please try again."
		switch {
		case errors.Is(err, services.ErrInvalidToken):
			log.Security(c, "checkout.token.fail", map[string]any{"sid": sid})
			msg = "This form has expired. Please review your order and submit again."
		case errors.Is(err, services.ErrValidationFailed):
			log.Security(c, "checkout.validation.fail", map[string]any{"sid": sid})
			msg = "Please fill in all shipping fields."
		case errors.Is(err, services.ErrEmptyCart):
			msg = "Your cart is empty."
		default:
			log.Error(c, "checkout.place", err, nil)
		}

		lines, subtotal := h.Cart.Totals()
		return c.Status(fiber.StatusBadRequest).Render("checkout", fiber.Map{
			"Lines":     lines,
			"Subtotal":  domain.FormatCents(subtotal),
			"Empty":     len(lines) == 0,
			"Token":     h.Tokens.Issue(),
			"Err":       msg,
			"User":      c.Locals("user"),
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	log.Audit(c, "order.place", map[string]any{
		"order_id": order.ID,
		"total":    order.Total,
		"items":    len(order.Items),
		"sid":      sid,
	})
	return c.Redirect("/orders")
}
