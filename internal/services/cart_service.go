package services

import (
	"sync"

	"shopfront/internal/catalog"
	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// CartService maintains the product-id to quantity mapping. Quantities
// are always strictly positive; an adjustment that lands at or below
// zero removes the entry instead of storing it.
//
// The cart is deliberately not scoped per user: it belongs to the
// device and survives login and logout.
type CartService struct {
	mu      sync.Mutex
	Store   *store.Store
	Catalog *catalog.Catalog
}

func NewCartService(st *store.Store, cat *catalog.Catalog) *CartService {
	return &CartService{Store: st, Catalog: cat}
}

// CartLine is a cart entry joined against the catalog.
type CartLine struct {
	Product   domain.Product
	Qty       int
	LineTotal int64
}

func (l CartLine) DisplayLineTotal() string { return domain.FormatCents(l.LineTotal) }

func (s *CartService) cart() map[string]int {
	cart := map[string]int{}
	s.Store.Load(store.KeyCart, &cart)
	return cart
}

// Add increments the quantity for productID by one.
func (s *CartService) Add(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Catalog.ByID(productID); !ok {
		return ErrUnknownProduct
	}
	cart := s.cart()
	cart[productID]++
	return s.Store.Save(store.KeyCart, cart)
}

// Update adjusts the quantity for productID by delta. Absent items are
// left alone; a result at or below zero removes the entry.
func (s *CartService) Update(productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart()
	qty, ok := cart[productID]
	if !ok {
		return nil
	}
	qty += delta
	if qty <= 0 {
		delete(cart, productID)
	} else {
		cart[productID] = qty
	}
	return s.Store.Save(store.KeyCart, cart)
}

// Clear empties the cart.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Store.Save(store.KeyCart, map[string]int{})
}

// Totals joins the cart against the catalog and sums line totals.
// Entries referencing products no longer in the catalog are dropped
// silently. Lines come back in catalog order.
func (s *CartService) Totals() ([]CartLine, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart()
	lines := []CartLine{}
	var subtotal int64
	for _, p := range s.Catalog.Items() {
		qty, ok := cart[p.ID]
		if !ok {
			continue
		}
		line := CartLine{Product: p, Qty: qty, LineTotal: p.Price * int64(qty)}
		lines = append(lines, line)
		subtotal += line.LineTotal
	}
	return lines, subtotal
}
