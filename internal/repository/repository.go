package repository

import "errors"

// ErrNotFound is returned by mutating calls that reference a missing record.
// Lookup methods return (nil, nil) on a miss instead, leaving the decision
// to the caller.
var ErrNotFound = errors.New("record not found")

// Repositories bundles every store the services need. All implementations
// are memory-resident: the board deliberately has no persistence, so state
// lives for the process lifetime and is reset on restart.
type Repositories struct {
	User         UserRepository
	Post         PostRepository
	Notification NotificationRepository
	MatchedItem  MatchedItemRepository
	Message      MessageRepository
	Category     CategoryRepository
	Report       ReportRepository
	Session      SessionRepository
	Audit        AuditRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		User:         NewUserRepository(),
		Post:         NewPostRepository(),
		Notification: NewNotificationRepository(),
		MatchedItem:  NewMatchedItemRepository(),
		Message:      NewMessageRepository(),
		Category:     NewCategoryRepository(),
		Report:       NewReportRepository(),
		Session:      NewSessionRepository(),
		Audit:        NewAuditRepository(),
	}
}
