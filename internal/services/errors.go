package services

import "errors"

// Failure kinds surfaced to the user as notices. None are fatal; the
// handler for the triggering action maps each to a message and moves on.
var (
	ErrDuplicateUser      = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidToken       = errors.New("checkout token is invalid or expired")
	ErrValidationFailed   = errors.New("shipping details are incomplete or malformed")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrUnknownProduct     = errors.New("unknown product")
)
