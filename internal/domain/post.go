package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a lost or found item report. Kind is immutable after creation;
// status changes go through the owner, an admin, or the match lifecycle.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	Kind        PostKind   `json:"kind"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	ItemDate    string     `json:"item_date"`
	ContactInfo string     `json:"contact_info"`
	Image       *string    `json:"image,omitempty"`
	Status      PostStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PostKind string

const (
	KindLost  PostKind = "lost"
	KindFound PostKind = "found"
)

func (k PostKind) IsValid() bool {
	return k == KindLost || k == KindFound
}

type PostStatus string

const (
	PostActive   PostStatus = "active"
	PostMatched  PostStatus = "matched" // reserved; a resolution moves posts straight to resolved
	PostResolved PostStatus = "resolved"
	PostReported PostStatus = "reported"
)

type CreatePostInput struct {
	Kind        PostKind `json:"kind" validate:"required,oneof=lost found"`
	Title       string   `json:"title" validate:"required,min=3,max=120"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required,min=10"`
	Location    string   `json:"location" validate:"required"`
	ItemDate    string   `json:"item_date" validate:"required,datetime=2006-01-02"`
	ContactInfo string   `json:"contact_info" validate:"required"`
	Image       *string  `json:"image,omitempty"`
}

// UpdatePostInput deliberately has no kind field: a lost report can never
// become a found report.
type UpdatePostInput struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=10"`
	Location    *string `json:"location,omitempty"`
	ItemDate    *string `json:"item_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ContactInfo *string `json:"contact_info,omitempty"`
	Image       *string `json:"image,omitempty"`
}

type PostSort string

const (
	SortNewest PostSort = "newest"
	SortOldest PostSort = "oldest"
)

// SearchFilter narrows a board search. Kind and Category accept "all".
type SearchFilter struct {
	Query    string   `json:"query" query:"q"`
	Kind     string   `json:"kind" query:"kind"`
	Category string   `json:"category" query:"category"`
	Sort     PostSort `json:"sort" query:"sort"`
}
