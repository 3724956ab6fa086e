package domain

import (
	"time"

	"github.com/google/uuid"
)

// MatchCandidate is the ephemeral output of the matching engine: a scored
// pairing against one open lost post. It is never stored.
type MatchCandidate struct {
	LostPost   *Post  `json:"lost_post"`
	Percentage int    `json:"percentage"`
	Reason     string `json:"reason"`
}

// MatchedItem is the durable record of one lost-found pairing. Titles and
// owner names are snapshotted at match time so the record stays meaningful
// after later edits or deletes of the underlying posts.
type MatchedItem struct {
	ID                 uuid.UUID   `json:"id"`
	LostItemID         uuid.UUID   `json:"lost_item_id"`
	LostItemTitle      string      `json:"lost_item_title"`
	LostItemOwnerID    uuid.UUID   `json:"lost_item_owner_id"`
	LostItemOwnerName  string      `json:"lost_item_owner_name"`
	FoundItemID        uuid.UUID   `json:"found_item_id"`
	FoundItemTitle     string      `json:"found_item_title"`
	FoundItemOwnerID   uuid.UUID   `json:"found_item_owner_id"`
	FoundItemOwnerName string      `json:"found_item_owner_name"`
	MatchPercentage    int         `json:"match_percentage"`
	MatchReason        string      `json:"match_reason"`
	Status             MatchStatus `json:"status"`
	MatchedAt          time.Time   `json:"matched_at"`
}

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"
	MatchResolved MatchStatus = "resolved"
)

// Involves reports whether the user owns either side of the pairing.
func (m *MatchedItem) Involves(userID uuid.UUID) bool {
	return m.LostItemOwnerID == userID || m.FoundItemOwnerID == userID
}
