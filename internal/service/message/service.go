package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

var (
	ErrMessageNotFound   = errors.New("message not found")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrAdminUnavailable  = errors.New("admin contact not available")
	ErrNotParticipant    = errors.New("message belongs to another conversation")
	ErrPostNotFound      = errors.New("post not found")
	ErrOwnPost           = errors.New("cannot contact the owner of your own post")
)

type Service interface {
	// Send delivers a message. Regular users can only write to the admin
	// team: their recipient is forced to an admin account and the subject is
	// prefixed with "Contact:". Admins can message any registered email.
	Send(ctx context.Context, sender *domain.User, input domain.SendMessageInput) (*domain.Message, error)
	// ContactOwner messages the owner of a listing directly, carrying the
	// post id so the recipient can tell which item the message is about.
	// This is the one path where a regular user writes to another user.
	ContactOwner(ctx context.Context, sender *domain.User, input domain.ContactOwnerInput) (*domain.Message, error)
	// SendFromAdmin is used by moderation flows (e.g. unblock notices).
	SendFromAdmin(ctx context.Context, admin *domain.User, to *domain.User, subject, body string) (*domain.Message, error)
	Inbox(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	Sent(ctx context.Context, userID uuid.UUID) ([]domain.Message, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkUnread(ctx context.Context, userID, id uuid.UUID) error
	ToggleRead(ctx context.Context, userID, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type service struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
}

func NewService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, postRepo repository.PostRepository) Service {
	return &service{messageRepo: messageRepo, userRepo: userRepo, postRepo: postRepo}
}

func (s *service) Send(ctx context.Context, sender *domain.User, input domain.SendMessageInput) (*domain.Message, error) {
	var recipient *domain.User
	subject := input.Subject

	if sender.IsAdmin() {
		u, err := s.userRepo.GetByEmail(ctx, input.RecipientEmail)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrRecipientNotFound
		}
		recipient = u
	} else {
		admin, err := s.findAdmin(ctx)
		if err != nil {
			return nil, err
		}
		recipient = admin
		subject = "Contact: " + subject
	}

	msg := &domain.Message{
		ID:           uuid.New(),
		FromUserID:   sender.ID,
		FromUserName: sender.Name,
		ToUserID:     recipient.ID,
		ToUserName:   recipient.Name,
		Subject:      subject,
		Body:         input.Body,
		PostID:       input.PostID,
		CreatedAt:    time.Now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *service) ContactOwner(ctx context.Context, sender *domain.User, input domain.ContactOwnerInput) (*domain.Message, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID == sender.ID {
		return nil, ErrOwnPost
	}

	owner, err := s.userRepo.GetByID(ctx, post.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrRecipientNotFound
	}

	msg := &domain.Message{
		ID:           uuid.New(),
		FromUserID:   sender.ID,
		FromUserName: sender.Name,
		ToUserID:     owner.ID,
		ToUserName:   owner.Name,
		Subject:      input.Subject,
		Body:         input.Body,
		PostID:       &post.ID,
		CreatedAt:    time.Now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *service) SendFromAdmin(ctx context.Context, admin *domain.User, to *domain.User, subject, body string) (*domain.Message, error) {
	msg := &domain.Message{
		ID:           uuid.New(),
		FromUserID:   admin.ID,
		FromUserName: "Admin",
		ToUserID:     to.ID,
		ToUserName:   to.Name,
		Subject:      subject,
		Body:         body,
		CreatedAt:    time.Now(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *service) findAdmin(ctx context.Context) (*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Role == domain.RoleAdmin {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrAdminUnavailable
}

func (s *service) Inbox(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return s.messageRepo.Inbox(ctx, userID)
}

func (s *service) Sent(ctx context.Context, userID uuid.UUID) ([]domain.Message, error) {
	return s.messageRepo.Sent(ctx, userID)
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.messageRepo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.setRead(ctx, userID, id, true)
}

func (s *service) MarkUnread(ctx context.Context, userID, id uuid.UUID) error {
	return s.setRead(ctx, userID, id, false)
}

func (s *service) setRead(ctx context.Context, userID, id uuid.UUID, read bool) error {
	msg, err := s.getForRecipient(ctx, userID, id)
	if err != nil {
		return err
	}
	msg.IsRead = read
	return s.messageRepo.Update(ctx, msg)
}

func (s *service) ToggleRead(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	msg, err := s.getForRecipient(ctx, userID, id)
	if err != nil {
		return false, err
	}
	msg.IsRead = !msg.IsRead
	if err := s.messageRepo.Update(ctx, msg); err != nil {
		return false, err
	}
	return msg.IsRead, nil
}

func (s *service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if msg == nil {
		return ErrMessageNotFound
	}
	if msg.ToUserID != userID && msg.FromUserID != userID {
		return ErrNotParticipant
	}
	return s.messageRepo.Delete(ctx, id)
}

func (s *service) getForRecipient(ctx context.Context, userID, id uuid.UUID) (*domain.Message, error) {
	msg, err := s.messageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, ErrMessageNotFound
	}
	if msg.ToUserID != userID {
		return nil, ErrNotParticipant
	}
	return msg, nil
}
