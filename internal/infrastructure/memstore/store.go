// Package memstore provides a thread-safe in-memory ShoppingListRepository
// for tests and single-process deployments.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/pantrysync/backend/internal/domain"
)

// Store keeps shopping lists in memory, keyed by list id. All methods are
// safe for concurrent use; callers always receive copies, never the backing
// slices.
type Store struct {
	mu    sync.RWMutex
	lists map[uuid.UUID][]domain.ShoppingItem
}

// New creates an empty store.
func New() *Store {
	return &Store{lists: make(map[uuid.UUID][]domain.ShoppingItem)}
}

// CreateList registers a new empty list and returns its id.
func (s *Store) CreateList() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.lists[id] = []domain.ShoppingItem{}
	return id
}

// ListItems returns a copy of the list's items in insertion order.
func (s *Store) ListItems(ctx context.Context, listID uuid.UUID) ([]domain.ShoppingItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.lists[listID]
	if !ok {
		return nil, domain.ErrListNotFound
	}
	out := make([]domain.ShoppingItem, len(items))
	copy(out, items)
	return out, nil
}

// InsertItem appends an item to the list, assigning an id if the caller
// left it zero.
func (s *Store) InsertItem(ctx context.Context, listID uuid.UUID, item domain.ShoppingItem) (domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[listID]; !ok {
		return domain.ShoppingItem{}, domain.ErrListNotFound
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.lists[listID] = append(s.lists[listID], item)
	return item, nil
}

// UpdateItem replaces the stored item carrying the same id.
func (s *Store) UpdateItem(ctx context.Context, listID uuid.UUID, item domain.ShoppingItem) (domain.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.lists[listID]
	if !ok {
		return domain.ShoppingItem{}, domain.ErrListNotFound
	}
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			return item, nil
		}
	}
	return domain.ShoppingItem{}, domain.ErrItemNotFound
}
