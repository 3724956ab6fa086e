package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is direct mail between two users, optionally tied to a post.
// Sender and recipient names are snapshotted so threads survive account
// changes.
type Message struct {
	ID           uuid.UUID  `json:"id"`
	FromUserID   uuid.UUID  `json:"from_user_id"`
	FromUserName string     `json:"from_user_name"`
	ToUserID     uuid.UUID  `json:"to_user_id"`
	ToUserName   string     `json:"to_user_name"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	PostID       *uuid.UUID `json:"post_id,omitempty"`
	IsRead       bool       `json:"is_read"`
	CreatedAt    time.Time  `json:"created_at"`
}

type SendMessageInput struct {
	RecipientEmail string     `json:"recipient_email" validate:"required,email"`
	Subject        string     `json:"subject" validate:"required,min=1,max=200"`
	Body           string     `json:"body" validate:"required,min=1"`
	PostID         *uuid.UUID `json:"post_id,omitempty"`
}

// ContactOwnerInput addresses the owner of a post rather than a named
// recipient; the owner is looked up from the post.
type ContactOwnerInput struct {
	PostID  uuid.UUID `json:"post_id" validate:"required"`
	Subject string    `json:"subject" validate:"required,min=1,max=200"`
	Body    string    `json:"body" validate:"required,min=1"`
}
