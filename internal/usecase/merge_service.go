package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrysync/backend/internal/domain"
)

// defaultQuantity substitutes for absent quantities when summing; a "to
// taste" item counts as one.
const defaultQuantity = 1.0

// MergeServiceConfig holds configuration for the merge service
type MergeServiceConfig struct {
	EnableDebugLogging bool
}

// MergeService implements add-or-merge semantics over an injected shopping
// list repository. All mutation of a given list is serialized through a
// per-list lock: the matcher's insert-vs-merge decision is only correct if
// it observes every prior mutation of that list.
type MergeService struct {
	repo    domain.ShoppingListRepository
	matcher *ItemMatcher
	logger  *zap.Logger
	debug   bool

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// NewMergeService creates a new merge service with dependencies.
func NewMergeService(repo domain.ShoppingListRepository, matcher *ItemMatcher, logger *zap.Logger, config MergeServiceConfig) *MergeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MergeService{
		repo:    repo,
		matcher: matcher,
		logger:  logger,
		debug:   config.EnableDebugLogging,
		locks:   make(map[uuid.UUID]*sync.Mutex),
	}
}

// AddOrMerge adds one ingredient mention to a list, merging into the first
// matching unchecked item when one exists. Storage errors propagate
// unmodified.
func (s *MergeService) AddOrMerge(ctx context.Context, listID uuid.UUID, input domain.MergeInput) (domain.MergeResult, error) {
	lock := s.listLock(listID)
	lock.Lock()
	defer lock.Unlock()
	return s.addOrMergeLocked(ctx, listID, input)
}

// AddOrMergeAll processes inputs strictly sequentially, re-reading the list
// before each one so two inputs in the same batch for the same ingredient
// merge into a single item instead of racing to "not found". This is a
// correctness constraint, not a performance choice.
func (s *MergeService) AddOrMergeAll(ctx context.Context, listID uuid.UUID, inputs []domain.MergeInput) ([]domain.MergeResult, error) {
	lock := s.listLock(listID)
	lock.Lock()
	defer lock.Unlock()

	results := make([]domain.MergeResult, 0, len(inputs))
	for _, input := range inputs {
		result, err := s.addOrMergeLocked(ctx, listID, input)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *MergeService) addOrMergeLocked(ctx context.Context, listID uuid.UUID, input domain.MergeInput) (domain.MergeResult, error) {
	items, err := s.repo.ListItems(ctx, listID)
	if err != nil {
		return domain.MergeResult{}, err
	}

	if match := s.matcher.FindMatch(input.Name, input.Unit, items); match != nil {
		previous := match.Quantity
		sum := quantityOrDefault(match.Quantity) + quantityOrDefault(input.Quantity)
		match.Quantity = &sum
		match.Notes = CombineNotes(match.Notes, input.Notes)

		updated, err := s.repo.UpdateItem(ctx, listID, *match)
		if err != nil {
			return domain.MergeResult{}, err
		}
		if s.debug {
			s.logger.Debug("merged into existing item",
				zap.String("list_id", listID.String()),
				zap.String("name", updated.Name),
				zap.Float64("quantity", sum))
		}
		return domain.MergeResult{Item: updated, Merged: true, PreviousQuantity: previous}, nil
	}

	position := 0
	for _, item := range items {
		if item.Position >= position {
			position = item.Position + 1
		}
	}

	inserted, err := s.repo.InsertItem(ctx, listID, domain.ShoppingItem{
		ID:       uuid.New(),
		Name:     input.Name,
		Unit:     input.Unit,
		Quantity: input.Quantity,
		Notes:    input.Notes,
		Checked:  false,
		Position: position,
	})
	if err != nil {
		return domain.MergeResult{}, err
	}
	if s.debug {
		s.logger.Debug("inserted new item",
			zap.String("list_id", listID.String()),
			zap.String("name", inserted.Name),
			zap.Int("position", inserted.Position))
	}
	return domain.MergeResult{Item: inserted, Merged: false}, nil
}

// listLock returns the mutex guarding listID, creating it on first use.
func (s *MergeService) listLock(listID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[listID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[listID] = lock
	}
	return lock
}

func quantityOrDefault(q *float64) float64 {
	if q == nil {
		return defaultQuantity
	}
	return *q
}
