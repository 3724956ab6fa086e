// Package match owns the lifecycle of a lost-found pairing: recording the
// pairing when the matching engine qualifies it, notifying the lost-item
// owner, and cascading a later resolution to both posts and their
// notifications.
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

var ErrMatchNotFound = errors.New("match not found")

// ResolutionPolicy decides which match notifications a resolution touches.
//
// SharedItemPolicy reproduces the source behavior: every match notification
// that references the resolved match's lost item or its found item is
// resolved, including notifications belonging to other matches that share
// one of the items. ExactPairPolicy narrows the cascade to notifications
// referencing exactly this lost-found pair.
type ResolutionPolicy func(n *domain.Notification, m *domain.MatchedItem) bool

func SharedItemPolicy(n *domain.Notification, m *domain.MatchedItem) bool {
	return (n.LostItemID != nil && *n.LostItemID == m.LostItemID) ||
		(n.FoundItemID != nil && *n.FoundItemID == m.FoundItemID)
}

func ExactPairPolicy(n *domain.Notification, m *domain.MatchedItem) bool {
	return n.LostItemID != nil && *n.LostItemID == m.LostItemID &&
		n.FoundItemID != nil && *n.FoundItemID == m.FoundItemID
}

type Service interface {
	// OnFoundItemMatched persists one notification and one matched-item
	// record per qualifying candidate. The found post must already be
	// persisted; candidates come straight from the matching engine.
	OnFoundItemMatched(ctx context.Context, found *domain.Post, finder *domain.User, candidates []domain.MatchCandidate) error
	// Resolve marks the match resolved and cascades: both linked posts (if
	// they still exist) and the notifications selected by the resolution
	// policy. Resolving an already-resolved match is a no-op re-apply.
	Resolve(ctx context.Context, matchID uuid.UUID, actor *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchedItem, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.MatchedItem, error)
}

type service struct {
	matchRepo repository.MatchedItemRepository
	postRepo  repository.PostRepository
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	auditRepo repository.AuditRepository
	policy    ResolutionPolicy
}

func NewService(
	matchRepo repository.MatchedItemRepository,
	postRepo repository.PostRepository,
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	auditRepo repository.AuditRepository,
	policy ResolutionPolicy,
) Service {
	if policy == nil {
		policy = SharedItemPolicy
	}
	return &service{
		matchRepo: matchRepo,
		postRepo:  postRepo,
		notifRepo: notifRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		policy:    policy,
	}
}

func (s *service) OnFoundItemMatched(ctx context.Context, found *domain.Post, finder *domain.User, candidates []domain.MatchCandidate) error {
	for _, cand := range candidates {
		lost := cand.LostPost

		ownerName := ""
		owner, err := s.userRepo.GetByID(ctx, lost.UserID)
		if err != nil {
			return err
		}
		if owner != nil {
			ownerName = owner.Name
		}

		now := time.Now()
		notif := &domain.Notification{
			ID:          uuid.New(),
			UserID:      lost.UserID,
			Type:        domain.NotifMatch,
			Title:       fmt.Sprintf("Your lost item '%s' may match with a found item!", lost.Title),
			Message:     fmt.Sprintf("%s found an item that matches your lost %s at %s", finder.Name, lost.Title, found.Location),
			LostItemID:  &lost.ID,
			FoundItemID: &found.ID,
			Finder: &domain.FinderInfo{
				Name:    finder.Name,
				Email:   finder.Email,
				Contact: found.ContactInfo,
				Note:    fmt.Sprintf("I found this item at %s. Please contact me if it's yours!", found.Location),
			},
			Percentage: cand.Percentage,
			Reason:     cand.Reason,
			Status:     domain.MatchPending,
			CreatedAt:  now,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			return err
		}

		record := &domain.MatchedItem{
			ID:                 uuid.New(),
			LostItemID:         lost.ID,
			LostItemTitle:      lost.Title,
			LostItemOwnerID:    lost.UserID,
			LostItemOwnerName:  ownerName,
			FoundItemID:        found.ID,
			FoundItemTitle:     found.Title,
			FoundItemOwnerID:   finder.ID,
			FoundItemOwnerName: finder.Name,
			MatchPercentage:    cand.Percentage,
			MatchReason:        cand.Reason,
			Status:             domain.MatchPending,
			MatchedAt:          now,
		}
		if err := s.matchRepo.Create(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Resolve(ctx context.Context, matchID uuid.UUID, actor *domain.User) error {
	m, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMatchNotFound
	}

	alreadyResolved := m.Status == domain.MatchResolved

	m.Status = domain.MatchResolved
	if err := s.matchRepo.Update(ctx, m); err != nil {
		return err
	}

	// Linked posts may have been deleted independently; a missing post is
	// skipped, not an error.
	for _, postID := range []uuid.UUID{m.LostItemID, m.FoundItemID} {
		post, err := s.postRepo.GetByID(ctx, postID)
		if err != nil {
			return err
		}
		if post == nil {
			continue
		}
		post.Status = domain.PostResolved
		if err := s.postRepo.Update(ctx, post); err != nil {
			return err
		}
	}

	matchNotifs, err := s.notifRepo.ListByType(ctx, domain.NotifMatch)
	if err != nil {
		return err
	}
	for i := range matchNotifs {
		n := matchNotifs[i]
		if !s.policy(&n, m) {
			continue
		}
		n.Status = domain.MatchResolved
		n.IsRead = true
		if err := s.notifRepo.Update(ctx, &n); err != nil {
			return err
		}
	}

	// Re-applying a resolution leaves the state unchanged, so it does not
	// deserve a second audit entry.
	if s.auditRepo != nil && actor != nil && !alreadyResolved {
		entry := &domain.AuditEntry{
			ID:         uuid.New(),
			ActorID:    actor.ID,
			ActorName:  actor.Name,
			Action:     domain.AuditActionResolveMatch,
			EntityType: "matched_item",
			EntityID:   m.ID,
			Detail:     fmt.Sprintf("%s / %s", m.LostItemTitle, m.FoundItemTitle),
			CreatedAt:  time.Now(),
		}
		if err := s.auditRepo.Create(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.MatchedItem, error) {
	m, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.MatchedItem, error) {
	return s.matchRepo.ListByUser(ctx, userID)
}
