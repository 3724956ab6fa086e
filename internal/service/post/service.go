package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/match"
	"foundit-fast/internal/service/matching"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrNotOwner        = errors.New("only the owner or an admin can modify this post")
	ErrUnknownCategory = errors.New("unknown category")
)

type Service interface {
	// Create persists the report. For a found report it also runs the
	// matching engine over open lost posts and hands qualifying candidates
	// to the match lifecycle; the candidates are returned so the caller can
	// surface "possible match" messaging.
	Create(ctx context.Context, owner *domain.User, input domain.CreatePostInput) (*domain.Post, []domain.MatchCandidate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
	Browse(ctx context.Context, kind domain.PostKind) ([]domain.Post, error)
	Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

type service struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	auditRepo    repository.AuditRepository
	matchSvc     match.Service
}

func NewService(postRepo repository.PostRepository, categoryRepo repository.CategoryRepository, auditRepo repository.AuditRepository) *service {
	return &service{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		auditRepo:    auditRepo,
	}
}

// SetMatchService breaks the construction cycle between the post service
// and the match lifecycle.
func (s *service) SetMatchService(matchSvc match.Service) {
	s.matchSvc = matchSvc
}

func (s *service) Create(ctx context.Context, owner *domain.User, input domain.CreatePostInput) (*domain.Post, []domain.MatchCandidate, error) {
	cat, err := s.categoryRepo.GetByName(ctx, input.Category)
	if err != nil {
		return nil, nil, err
	}
	if cat == nil {
		return nil, nil, ErrUnknownCategory
	}

	post := &domain.Post{
		ID:          uuid.New(),
		UserID:      owner.ID,
		Kind:        input.Kind,
		Title:       input.Title,
		Category:    cat.Name,
		Description: input.Description,
		Location:    input.Location,
		ItemDate:    input.ItemDate,
		ContactInfo: input.ContactInfo,
		Image:       input.Image,
		Status:      domain.PostActive,
		CreatedAt:   time.Now(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, nil, err
	}

	if post.Kind != domain.KindFound {
		return post, nil, nil
	}

	openLost, err := s.postRepo.ListOpenByKind(ctx, domain.KindLost)
	if err != nil {
		return nil, nil, err
	}
	candidates := matching.FindMatches(post, openLost)
	if len(candidates) > 0 && s.matchSvc != nil {
		if err := s.matchSvc.OnFoundItemMatched(ctx, post, owner, candidates); err != nil {
			return nil, nil, err
		}
	}
	return post, candidates, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	return s.postRepo.ListByUser(ctx, userID)
}

func (s *service) Browse(ctx context.Context, kind domain.PostKind) ([]domain.Post, error) {
	return s.postRepo.ListOpenByKind(ctx, kind)
}

func (s *service) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.Post, error) {
	return s.postRepo.Search(ctx, filter)
}

func (s *service) List(ctx context.Context) ([]domain.Post, error) {
	return s.postRepo.List(ctx)
}

func (s *service) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdatePostInput) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return nil, ErrNotOwner
	}

	if input.Category != nil {
		cat, err := s.categoryRepo.GetByName(ctx, *input.Category)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, ErrUnknownCategory
		}
		post.Category = cat.Name
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.Location != nil {
		post.Location = *input.Location
	}
	if input.ItemDate != nil {
		post.ItemDate = *input.ItemDate
	}
	if input.ContactInfo != nil {
		post.ContactInfo = *input.ContactInfo
	}
	if input.Image != nil {
		post.Image = input.Image
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *service) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != actor.ID && !actor.IsAdmin() {
		return ErrNotOwner
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	if actor.IsAdmin() && post.UserID != actor.ID {
		entry := &domain.AuditEntry{
			ID:         uuid.New(),
			ActorID:    actor.ID,
			ActorName:  actor.Name,
			Action:     domain.AuditActionDeletePost,
			EntityType: "post",
			EntityID:   post.ID,
			Detail:     post.Title,
			CreatedAt:  time.Now(),
		}
		if err := s.auditRepo.Create(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
