package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one issued refresh token, stored hashed. Sessions live in
// memory only, so a restart logs everyone out.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) error
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions []Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Create(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	r.sessions = append(r.sessions, *session)
	return nil
}

func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	now := time.Now()
	for i := range r.sessions {
		s := r.sessions[i]
		if s.TokenHash == tokenHash && s.RevokedAt == nil && s.ExpiresAt.After(now) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.sessions {
		if r.sessions[i].ID == id && r.sessions[i].RevokedAt == nil {
			now := time.Now()
			r.sessions[i].RevokedAt = &now
			return nil
		}
	}
	return ErrNotFound
}

func (r *sessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for i := range r.sessions {
		if r.sessions[i].UserID == userID && r.sessions[i].RevokedAt == nil {
			r.sessions[i].RevokedAt = &now
		}
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	kept := r.sessions[:0]
	for i := range r.sessions {
		if r.sessions[i].ExpiresAt.After(now) && r.sessions[i].RevokedAt == nil {
			kept = append(kept, r.sessions[i])
		}
	}
	r.sessions = kept
	return nil
}
