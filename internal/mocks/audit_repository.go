package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"foundit-fast/internal/domain"
)

type AuditRepository struct {
	mock.Mock
}

func (m *AuditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *AuditRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}
