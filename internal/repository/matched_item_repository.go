package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
)

type MatchedItemRepository interface {
	Create(ctx context.Context, match *domain.MatchedItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchedItem, error)
	List(ctx context.Context) ([]domain.MatchedItem, error)
	// ListByUser returns matches where the user owns either the lost or the
	// found item, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MatchedItem, error)
	Update(ctx context.Context, match *domain.MatchedItem) error
}

type matchedItemRepository struct {
	mu      sync.RWMutex
	matches []domain.MatchedItem
}

func NewMatchedItemRepository() MatchedItemRepository {
	return &matchedItemRepository{}
}

func (r *matchedItemRepository) Create(ctx context.Context, match *domain.MatchedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches = append(r.matches, *match)
	return nil
}

func (r *matchedItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.matches {
		if r.matches[i].ID == id {
			m := r.matches[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *matchedItemRepository) List(ctx context.Context) ([]domain.MatchedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MatchedItem, len(r.matches))
	copy(out, r.matches)
	return out, nil
}

func (r *matchedItemRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MatchedItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.MatchedItem
	for i := range r.matches {
		if r.matches[i].Involves(userID) {
			out = append(out, r.matches[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchedAt.After(out[j].MatchedAt) })
	return out, nil
}

func (r *matchedItemRepository) Update(ctx context.Context, match *domain.MatchedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.matches {
		if r.matches[i].ID == match.ID {
			r.matches[i] = *match
			return nil
		}
	}
	return ErrNotFound
}
