package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("notification belongs to another user")
)

type Service interface {
	Create(ctx context.Context, notif *domain.Notification) error
	List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	// ListPending narrows the feed to match notifications still awaiting
	// resolution, newest first.
	ListPending(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	// Delete removes a notification from the recipient's feed. The
	// underlying matched-item record, if any, is untouched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// ScheduleMarkAllRead arms a deferred mark-all-read for the user's feed,
	// replacing any timer still pending from a previous view. The returned
	// function cancels the sweep if it has not fired yet.
	ScheduleMarkAllRead(userID uuid.UUID, delay time.Duration) (cancel func())
}

type service struct {
	notifRepo repository.NotificationRepository

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{
		notifRepo: notifRepo,
		timers:    make(map[uuid.UUID]*time.Timer),
	}
}

func (s *service) Create(ctx context.Context, notif *domain.Notification) error {
	return s.notifRepo.Create(ctx, notif)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListByUser(ctx, userID)
}

func (s *service) ListPending(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	all, err := s.notifRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var pending []domain.Notification
	for i := range all {
		if all[i].Type == domain.NotifMatch && all[i].Status == domain.MatchPending {
			pending = append(pending, all[i])
		}
	}
	return pending, nil
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	if err := s.notifRepo.MarkAsRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	notif, err := s.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if notif == nil {
		return ErrNotificationNotFound
	}
	if notif.UserID != userID {
		return ErrNotRecipient
	}
	return s.notifRepo.Delete(ctx, id)
}

func (s *service) ScheduleMarkAllRead(userID uuid.UUID, delay time.Duration) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[userID]; ok {
		t.Stop()
	}

	timer := time.AfterFunc(delay, func() {
		// Fires on its own goroutine after the originating request is gone.
		_ = s.notifRepo.MarkAllAsRead(context.Background(), userID)
		s.mu.Lock()
		delete(s.timers, userID)
		s.mu.Unlock()
	})
	s.timers[userID] = timer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.timers[userID] == timer {
			timer.Stop()
			delete(s.timers, userID)
		}
	}
}
