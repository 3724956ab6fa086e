package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSelfReport      = errors.New("you cannot report yourself")
	ErrAlreadyReported = errors.New("you have already reported this user")
)

type Service interface {
	// ReportItem files a report against a post and moves the post to the
	// reported status so it drops off the public board.
	ReportItem(ctx context.Context, actor *domain.User, input domain.ReportItemInput) (*domain.ItemReport, error)
	// ReportUser files a report against a user. Regular users cannot report
	// themselves and cannot report the same user twice; admin reports skip
	// both checks.
	ReportUser(ctx context.Context, actor *domain.User, input domain.ReportUserInput) (*domain.UserReport, error)
	ListItemReports(ctx context.Context) ([]domain.ItemReport, error)
	ListUserReports(ctx context.Context) ([]domain.UserReport, error)
}

type service struct {
	reportRepo repository.ReportRepository
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	auditRepo  repository.AuditRepository
}

func NewService(reportRepo repository.ReportRepository, postRepo repository.PostRepository, userRepo repository.UserRepository, auditRepo repository.AuditRepository) Service {
	return &service{
		reportRepo: reportRepo,
		postRepo:   postRepo,
		userRepo:   userRepo,
		auditRepo:  auditRepo,
	}
}

func (s *service) ReportItem(ctx context.Context, actor *domain.User, input domain.ReportItemInput) (*domain.ItemReport, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	rep := &domain.ItemReport{
		ID:           uuid.New(),
		PostID:       post.ID,
		PostTitle:    post.Title,
		ReporterID:   actor.ID,
		ReporterName: actor.Name,
		Reason:       input.Reason,
		Notes:        input.Notes,
		Status:       domain.ReportPending,
		ReportedAt:   time.Now(),
	}
	if err := s.reportRepo.CreateItemReport(ctx, rep); err != nil {
		return nil, err
	}

	post.Status = domain.PostReported
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, actor, domain.AuditActionReportItem, post.ID, post.Title); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) ReportUser(ctx context.Context, actor *domain.User, input domain.ReportUserInput) (*domain.UserReport, error) {
	reported, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if reported == nil {
		return nil, ErrUserNotFound
	}

	if !actor.IsAdmin() {
		if actor.ID == reported.ID {
			return nil, ErrSelfReport
		}
		dup, err := s.reportRepo.HasUserReported(ctx, actor.ID, reported.ID)
		if err != nil {
			return nil, err
		}
		if dup {
			return nil, ErrAlreadyReported
		}
	}

	contextTitle := "Direct Report"
	if input.ContextPostID != nil {
		if post, err := s.postRepo.GetByID(ctx, *input.ContextPostID); err != nil {
			return nil, err
		} else if post != nil {
			contextTitle = post.Title
		}
	}

	source := domain.ReportByUser
	if actor.IsAdmin() {
		source = domain.ReportByAdmin
	}

	rep := &domain.UserReport{
		ID:               uuid.New(),
		ReportedUserID:   reported.ID,
		ReportedUserName: reported.Name,
		ReportedEmail:    reported.Email,
		ContextPostID:    input.ContextPostID,
		ContextPostTitle: contextTitle,
		ReporterID:       actor.ID,
		ReporterName:     actor.Name,
		Reason:           input.Reason,
		Notes:            input.Notes,
		Source:           source,
		Status:           domain.ReportPending,
		ReportedAt:       time.Now(),
	}
	if err := s.reportRepo.CreateUserReport(ctx, rep); err != nil {
		return nil, err
	}

	if err := s.audit(ctx, actor, domain.AuditActionReportUser, reported.ID, reported.Email); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *service) ListItemReports(ctx context.Context) ([]domain.ItemReport, error) {
	return s.reportRepo.ListItemReports(ctx)
}

func (s *service) ListUserReports(ctx context.Context) ([]domain.UserReport, error) {
	return s.reportRepo.ListUserReports(ctx)
}

func (s *service) audit(ctx context.Context, actor *domain.User, action string, entityID uuid.UUID, detail string) error {
	entityType := "post"
	if action == domain.AuditActionReportUser {
		entityType = "user"
	}
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	return s.auditRepo.Create(ctx, entry)
}
