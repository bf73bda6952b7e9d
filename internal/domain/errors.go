package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidPickup     = errors.New("pickup date/time could not be parsed")
	ErrEmptyOrder        = errors.New("order has no items")
)
