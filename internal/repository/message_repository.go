package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	Inbox(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	Sent(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, msg *domain.Message) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type messageRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
}

func NewMessageRepository() MessageRepository {
	return &messageRepository{}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			m := r.messages[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *messageRepository) Inbox(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return r.listWhere(func(m *domain.Message) bool { return m.ToUserID == userID })
}

func (r *messageRepository) Sent(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return r.listWhere(func(m *domain.Message) bool { return m.FromUserID == userID })
}

func (r *messageRepository) listWhere(keep func(*domain.Message) bool) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Message
	for i := range r.messages {
		if keep(&r.messages[i]) {
			out = append(out, r.messages[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *messageRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.messages {
		if r.messages[i].ToUserID == userID && !r.messages[i].IsRead {
			count++
		}
	}
	return count, nil
}

func (r *messageRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}

func (r *messageRepository) Update(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == msg.ID {
			r.messages[i] = *msg
			return nil
		}
	}
	return ErrNotFound
}

func (r *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.messages {
		if r.messages[i].ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
