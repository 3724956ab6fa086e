package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

// ReportSource records whether a report came from moderation or from a
// regular user. Admin reports skip the self-report and duplicate checks.
type ReportSource string

const (
	ReportByAdmin ReportSource = "admin"
	ReportByUser  ReportSource = "user"
)

// ItemReport flags a post for moderation; the post itself is moved to the
// reported status when the report is filed.
type ItemReport struct {
	ID           uuid.UUID    `json:"id"`
	PostID       uuid.UUID    `json:"post_id"`
	PostTitle    string       `json:"post_title"`
	ReporterID   uuid.UUID    `json:"reporter_id"`
	ReporterName string       `json:"reporter_name"`
	Reason       string       `json:"reason"`
	Notes        string       `json:"notes,omitempty"`
	Status       ReportStatus `json:"status"`
	ReportedAt   time.Time    `json:"reported_at"`
}

// UserReport flags a user, optionally in the context of one of their posts.
type UserReport struct {
	ID               uuid.UUID    `json:"id"`
	ReportedUserID   uuid.UUID    `json:"reported_user_id"`
	ReportedUserName string       `json:"reported_user_name"`
	ReportedEmail    string       `json:"reported_user_email"`
	ContextPostID    *uuid.UUID   `json:"context_post_id,omitempty"`
	ContextPostTitle string       `json:"context_post_title"`
	ReporterID       uuid.UUID    `json:"reporter_id"`
	ReporterName     string       `json:"reporter_name"`
	Reason           string       `json:"reason"`
	Notes            string       `json:"notes,omitempty"`
	Source           ReportSource `json:"source"`
	Status           ReportStatus `json:"status"`
	ReportedAt       time.Time    `json:"reported_at"`
}

type ReportItemInput struct {
	PostID uuid.UUID `json:"post_id" validate:"required"`
	Reason string    `json:"reason" validate:"required"`
	Notes  string    `json:"notes" validate:"max=500"`
}

type ReportUserInput struct {
	UserID        uuid.UUID  `json:"user_id" validate:"required"`
	ContextPostID *uuid.UUID `json:"context_post_id,omitempty"`
	Reason        string     `json:"reason" validate:"required"`
	Notes         string     `json:"notes" validate:"max=500"`
}
