// Package catalog holds the fixed demo product list. The catalog is
// baked in at startup and never mutated at runtime.
package catalog

import (
	"strings"

	"shopfront/internal/domain"
)

type Catalog struct {
	items []domain.Product
	byID  map[string]domain.Product
}

func New(items []domain.Product) *Catalog {
	byID := make(map[string]domain.Product, len(items))
	for _, p := range items {
		byID[p.ID] = p
	}
	return &Catalog{items: items, byID: byID}
}

// Fixed returns the built-in demo catalog.
func Fixed() *Catalog {
	return New([]domain.Product{
		{ID: "p1", Name: "Wireless Headphones", Category: "electronics", Price: 3999},
		{ID: "p2", Name: "Mechanical Keyboard", Category: "electronics", Price: 7499},
		{ID: "p3", Name: "Ceramic Pour-Over Set", Category: "kitchen", Price: 2899},
		{ID: "p4", Name: "Insulated Travel Mug", Category: "kitchen", Price: 1999},
		{ID: "p5", Name: "Canvas Messenger Bag", Category: "accessories", Price: 4599},
		{ID: "p6", Name: "Leather Card Wallet", Category: "accessories", Price: 2499},
	})
}

func (c *Catalog) ByID(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Items returns products in catalog order. Callers must not mutate the slice.
func (c *Catalog) Items() []domain.Product {
	return c.items
}

// Categories returns the distinct categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Filter returns products whose name contains q (case-insensitive) and,
// when category is non-empty, whose category matches exactly.
func (c *Catalog) Filter(q, category string) []domain.Product {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []domain.Product{}
	for _, p := range c.items {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
