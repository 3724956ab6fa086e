package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID          uuid.UUID        `json:"id"`
	UserID      uuid.UUID        `json:"user_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	LostItemID  *uuid.UUID       `json:"lost_item_id,omitempty"`
	FoundItemID *uuid.UUID       `json:"found_item_id,omitempty"`
	Finder      *FinderInfo      `json:"finder,omitempty"`
	Percentage  int              `json:"match_percentage,omitempty"`
	Reason      string           `json:"match_reason,omitempty"`
	Status      MatchStatus      `json:"status,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

type NotificationType string

const (
	NotifMatch   NotificationType = "match"
	NotifMessage NotificationType = "message"
	NotifSystem  NotificationType = "system"
)

// FinderInfo is an immutable snapshot of the finder's identity taken when a
// match notification is created, so the lost-item owner can make contact
// even if the finder later changes their profile.
type FinderInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Note    string `json:"note,omitempty"`
}
