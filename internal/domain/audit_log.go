package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records a moderation or lifecycle action for the admin
// activity feed.
type AuditEntry struct {
	ID         uuid.UUID `json:"id"`
	ActorID    uuid.UUID `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   uuid.UUID `json:"entity_id"`
	Detail     string    `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AuditActionBlockUser    = "user.block"
	AuditActionUnblockUser  = "user.unblock"
	AuditActionDeleteUser   = "user.delete"
	AuditActionDeletePost   = "post.delete"
	AuditActionReportItem   = "post.report"
	AuditActionReportUser   = "user.report"
	AuditActionResolveMatch = "match.resolve"
)
