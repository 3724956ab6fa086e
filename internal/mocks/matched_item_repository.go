package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"foundit-fast/internal/domain"
)

type MatchedItemRepository struct {
	mock.Mock
}

func (m *MatchedItemRepository) Create(ctx context.Context, match *domain.MatchedItem) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}

func (m *MatchedItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchedItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchedItem), args.Error(1)
}

func (m *MatchedItemRepository) List(ctx context.Context) ([]domain.MatchedItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchedItem), args.Error(1)
}

func (m *MatchedItemRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MatchedItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchedItem), args.Error(1)
}

func (m *MatchedItemRepository) Update(ctx context.Context, match *domain.MatchedItem) error {
	args := m.Called(ctx, match)
	return args.Error(0)
}
