package models

import "errors"

// Common errors used throughout the application
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrTooManyCarts  = errors.New("too many carts for session")
	ErrMixedCarts    = errors.New("tickets reference more than one cart")
	ErrEventNotFound = errors.New("event not found")
)
