package handler

import (
	"foundit-fast/internal/config"
	"foundit-fast/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Post         *PostHandler
	Match        *MatchHandler
	Notification *NotificationHandler
	Message      *MessageHandler
	Category     *CategoryHandler
	Report       *ReportHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Post:         NewPostHandler(services.Post),
		Match:        NewMatchHandler(services.Match),
		Notification: NewNotificationHandler(services.Notification, cfg.NotificationReadDelay),
		Message:      NewMessageHandler(services.Message),
		Category:     NewCategoryHandler(services.Category),
		Report:       NewReportHandler(services.Report),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Audit:        NewAuditHandler(services.Audit),
	}
}
