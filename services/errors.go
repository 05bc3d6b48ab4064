package services

import "errors"

// Sentinel errors translated to HTTP status codes at the controller boundary.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrCartConflict      = errors.New("cart changed during checkout")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotDeliveryCrew   = errors.New("user is not delivery crew")
	ErrEmptyUpdate       = errors.New("no fields to update")
)
