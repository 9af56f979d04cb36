package domain

import "errors"

var (
	// ErrListNotFound is returned when a shopping list id is unknown to the store
	ErrListNotFound = errors.New("shopping list not found")

	// ErrItemNotFound is returned when updating a shopping item that no longer exists
	ErrItemNotFound = errors.New("shopping item not found")
)
