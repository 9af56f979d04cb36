package domain

import "github.com/google/uuid"

// ShoppingItem is one row of a shopping list. Unchecked items accumulate
// later mentions of the same ingredient; once Checked is set the item is
// frozen from automatic merging but is otherwise ordinary.
type ShoppingItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Unit     string    `json:"unit,omitempty"`
	Quantity *float64  `json:"quantity,omitempty"`
	Notes    string    `json:"notes,omitempty"`
	Checked  bool      `json:"checked"`
	Position int       `json:"position"`
}

// MergeInput is one pre-scaled ingredient mention handed to the merge
// service. Callers that convert recipes or meal plans apply serving ratios
// and repeat counts before building the input.
type MergeInput struct {
	Name     string   `json:"name" binding:"required"`
	Unit     string   `json:"unit,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// MergeResult reports whether an input merged into an existing item or
// created a new one. PreviousQuantity carries the pre-merge quantity when
// Merged is true.
type MergeResult struct {
	Item             ShoppingItem `json:"item"`
	Merged           bool         `json:"merged"`
	PreviousQuantity *float64     `json:"previousQuantity,omitempty"`
}
