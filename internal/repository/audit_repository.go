package repository

import (
	"context"
	"sync"

	"foundit-fast/internal/domain"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	// Recent returns the newest entries first, at most limit of them.
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	mu      sync.RWMutex
	entries []domain.AuditEntry
}

func NewAuditRepository() AuditRepository {
	return &auditRepository{}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *auditRepository) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.AuditEntry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}
