package services

import (
	"sync"

	"shopfront/internal/digest"
	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// AuthService owns the user directory and the current-user identity.
// The identity is a single global value restored from the store on
// first use, mirroring the one-browser-profile scope of the app.
type AuthService struct {
	mu    sync.Mutex
	Store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{Store: st}
}

func (s *AuthService) users() map[string]domain.User {
	users := map[string]domain.User{}
	s.Store.Load(store.KeyUsers, &users)
	return users
}

// Register creates an account keyed by normalized email and logs the
// new user in. Fails with ErrDuplicateUser when the key is taken.
func (s *AuthService) Register(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.NormalizeEmail(email)
	users := s.users()
	if _, exists := users[key]; exists {
		return ErrDuplicateUser
	}
	users[key] = domain.User{PasswordHash: digest.Sum(password)}
	if err := s.Store.Save(store.KeyUsers, users); err != nil {
		return err
	}
	return s.Store.Save(store.KeyCurrentUser, key)
}

// Login verifies the password digest against the stored record and, on
// success, persists the normalized email as the current user.
func (s *AuthService) Login(email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.NormalizeEmail(email)
	u, exists := s.users()[key]
	if !exists || u.PasswordHash != digest.Sum(password) {
		return ErrInvalidCredentials
	}
	return s.Store.Save(store.KeyCurrentUser, key)
}

// Logout clears the current-user identity.
func (s *AuthService) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Store.Delete(store.KeyCurrentUser)
}

// Current returns the normalized email of the logged-in user, if any.
func (s *AuthService) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var email string
	if !s.Store.Load(store.KeyCurrentUser, &email) || email == "" {
		return "", false
	}
	return email, true
}
