package domain

import (
	"context"

	"github.com/google/uuid"
)

// ShoppingListRepository is the lookup+upsert surface the merge engine uses.
// The shopping list collaborator owns the persisted collection; the engine
// only reads and writes through this interface and propagates its errors
// unmodified.
type ShoppingListRepository interface {
	ListItems(ctx context.Context, listID uuid.UUID) ([]ShoppingItem, error)
	InsertItem(ctx context.Context, listID uuid.UUID, item ShoppingItem) (ShoppingItem, error)
	UpdateItem(ctx context.Context, listID uuid.UUID, item ShoppingItem) (ShoppingItem, error)
}

// ShoppingListAdmin creates lists. Kept separate from
// ShoppingListRepository because the engine itself never creates lists;
// only the delivery layer does.
type ShoppingListAdmin interface {
	CreateList() uuid.UUID
}
