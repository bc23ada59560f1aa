package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopfront/internal/catalog"
)

type ShopHandler struct {
	Catalog *catalog.Catalog
}

// Home renders the product grid, optionally narrowed by a name query
// and a category.
func (h *ShopHandler) Home(c *fiber.Ctx) error {
	q := c.Query("q")
	category := c.Query("category")

	return render(c, "home", fiber.Map{
		"Products":   h.Catalog.Filter(q, category),
		"Categories": h.Catalog.Categories(),
		"Query":      q,
		"Category":   category,
	})
}
