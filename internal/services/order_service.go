package services

import (
	"sync"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// OrderService keeps the per-user order history, newest first.
type OrderService struct {
	mu    sync.Mutex
	Store *store.Store
	Auth  *AuthService
}

func NewOrderService(st *store.Store, auth *AuthService) *OrderService {
	return &OrderService{Store: st, Auth: auth}
}

func (s *OrderService) orders() map[string][]domain.Order {
	orders := map[string][]domain.Order{}
	s.Store.Load(store.KeyOrders, &orders)
	return orders
}

// List returns the current user's orders, newest first. Logged-out
// callers get an empty slice.
func (s *OrderService) List() []domain.Order {
	user, ok := s.Auth.Current()
	if !ok {
		return []domain.Order{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders()[user]
}

// Record prepends the order to the current user's history and persists
// the full mapping. A no-op when nobody is logged in.
func (s *OrderService) Record(o domain.Order) error {
	user, ok := s.Auth.Current()
	if !ok {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.orders()
	orders[user] = append([]domain.Order{o}, orders[user]...)
	return s.Store.Save(store.KeyOrders, orders)
}
