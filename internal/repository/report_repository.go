package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
)

type ReportRepository interface {
	CreateItemReport(ctx context.Context, report *domain.ItemReport) error
	ListItemReports(ctx context.Context) ([]domain.ItemReport, error)
	CreateUserReport(ctx context.Context, report *domain.UserReport) error
	ListUserReports(ctx context.Context) ([]domain.UserReport, error)
	// HasUserReported reports whether reporter already filed a report
	// against reported, used to block duplicate reports by regular users.
	HasUserReported(ctx context.Context, reporterID, reportedID uuid.UUID) (bool, error)
	UpdateUserReport(ctx context.Context, report *domain.UserReport) error
}

type reportRepository struct {
	mu          sync.RWMutex
	itemReports []domain.ItemReport
	userReports []domain.UserReport
}

func NewReportRepository() ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) CreateItemReport(ctx context.Context, report *domain.ItemReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemReports = append(r.itemReports, *report)
	return nil
}

func (r *reportRepository) ListItemReports(ctx context.Context) ([]domain.ItemReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ItemReport, len(r.itemReports))
	copy(out, r.itemReports)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	return out, nil
}

func (r *reportRepository) CreateUserReport(ctx context.Context, report *domain.UserReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userReports = append(r.userReports, *report)
	return nil
}

func (r *reportRepository) ListUserReports(ctx context.Context) ([]domain.UserReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.UserReport, len(r.userReports))
	copy(out, r.userReports)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	return out, nil
}

func (r *reportRepository) HasUserReported(ctx context.Context, reporterID, reportedID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.userReports {
		if r.userReports[i].ReporterID == reporterID && r.userReports[i].ReportedUserID == reportedID {
			return true, nil
		}
	}
	return false, nil
}

func (r *reportRepository) UpdateUserReport(ctx context.Context, report *domain.UserReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.userReports {
		if r.userReports[i].ID == report.ID {
			r.userReports[i] = *report
			return nil
		}
	}
	return ErrNotFound
}
