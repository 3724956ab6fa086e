package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/message"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input domain.ChangePasswordInput) error

	// Admin operations.
	List(ctx context.Context) ([]domain.User, error)
	// ToggleStatus flips a user between active and blocked.
	ToggleStatus(ctx context.Context, actor *domain.User, userID uuid.UUID) (*domain.User, error)
	// Unblock reactivates a blocked account and sends the user an admin
	// message telling them they are back in.
	Unblock(ctx context.Context, actor *domain.User, userID uuid.UUID) error
	Delete(ctx context.Context, actor *domain.User, userID uuid.UUID) error
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	auditRepo   repository.AuditRepository
	messageSvc  message.Service
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, auditRepo repository.AuditRepository, messageSvc message.Service) Service {
	return &service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		auditRepo:   auditRepo,
		messageSvc:  messageSvc,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateProfileInput) (*domain.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) ChangePassword(ctx context.Context, userID uuid.UUID, input domain.ChangePasswordInput) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	// Other devices must log in again with the new password.
	return s.sessionRepo.RevokeAllForUser(ctx, userID)
}

func (s *service) List(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

func (s *service) ToggleStatus(ctx context.Context, actor *domain.User, userID uuid.UUID) (*domain.User, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	action := domain.AuditActionBlockUser
	if user.Status == domain.UserActive {
		user.Status = domain.UserBlocked
	} else {
		user.Status = domain.UserActive
		action = domain.AuditActionUnblockUser
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Status == domain.UserBlocked {
		// A blocked user loses their sessions immediately.
		if err := s.sessionRepo.RevokeAllForUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := s.audit(ctx, actor, action, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Unblock(ctx context.Context, actor *domain.User, userID uuid.UUID) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Status = domain.UserActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	_, err = s.messageSvc.SendFromAdmin(ctx, actor, user,
		"Your Account Has Been Unblocked",
		"Good news! Your account has been unblocked and reactivated.\n\nYou can now log in and use all features normally. Please ensure you follow our community guidelines.")
	if err != nil {
		return err
	}

	return s.audit(ctx, actor, domain.AuditActionUnblockUser, user)
}

func (s *service) Delete(ctx context.Context, actor *domain.User, userID uuid.UUID) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.sessionRepo.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	return s.audit(ctx, actor, domain.AuditActionDeleteUser, user)
}

func (s *service) audit(ctx context.Context, actor *domain.User, action string, subject *domain.User) error {
	entry := &domain.AuditEntry{
		ID:         uuid.New(),
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: "user",
		EntityID:   subject.ID,
		Detail:     subject.Email,
		CreatedAt:  time.Now(),
	}
	return s.auditRepo.Create(ctx, entry)
}
