package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/services"
)

// RequireUser enforces that someone is logged in; otherwise redirect to login.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := auth.Current()
		if !ok {
			return c.Redirect("/login")
		}
		c.Locals("user", email)
		return c.Next()
	}
}
