package audit

import (
	"context"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

type Service interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type service struct {
	auditRepo repository.AuditRepository
}

func NewService(auditRepo repository.AuditRepository) Service {
	return &service{auditRepo: auditRepo}
}

func (s *service) Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	return s.auditRepo.Recent(ctx, limit)
}
