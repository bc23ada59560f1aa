package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopfront/internal/log"
	"shopfront/internal/services"
	"shopfront/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	if _, ok := validate.Email(email); !ok || pass == "" {
		log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	if err := h.Auth.Login(email, pass); err != nil {
		log.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email, "sid": sid})
	return c.Redirect("/")
}

func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return render(c, "register", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")

	if _, ok := validate.Email(email); !ok {
		log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Please enter a valid email address", "CSRFToken": c.Cookies("csrf_")})
	}
	if pass == "" {
		return c.Status(fiber.StatusBadRequest).Render("register", fiber.Map{"Err": "Please choose a password", "CSRFToken": c.Cookies("csrf_")})
	}

	if err := h.Auth.Register(email, pass); err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			log.Security(c, "auth.register.fail", map[string]any{"email": email, "reason": "duplicate"})
			return c.Status(fiber.StatusConflict).Render("register", fiber.Map{"Err": "An account with this email already exists", "CSRFToken": c.Cookies("csrf_")})
		}
		log.Error(c, "auth.register", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("register", fiber.Map{"Err": "Something went wrong. Please try again.", "CSRFToken": c.Cookies("csrf_")})
	}

	log.Audit(c, "auth.register.success", map[string]any{"email": email, "sid": sid})
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout()
	log.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
