package service

import (
	"foundit-fast/internal/config"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/audit"
	"foundit-fast/internal/service/auth"
	"foundit-fast/internal/service/category"
	"foundit-fast/internal/service/dashboard"
	"foundit-fast/internal/service/match"
	"foundit-fast/internal/service/message"
	"foundit-fast/internal/service/notification"
	"foundit-fast/internal/service/post"
	"foundit-fast/internal/service/report"
	"foundit-fast/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Post         post.Service
	Match        match.Service
	Notification notification.Service
	Message      message.Service
	Category     category.Service
	Report       report.Service
	Dashboard    dashboard.Service
	Audit        audit.Service
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	authService := auth.NewService(repos.User, repos.Session, cfg)
	notificationService := notification.NewService(repos.Notification)
	messageService := message.NewService(repos.Message, repos.User, repos.Post)
	userService := user.NewService(repos.User, repos.Session, repos.Audit, messageService)
	categoryService := category.NewService(repos.Category)
	matchService := match.NewService(repos.MatchedItem, repos.Post, repos.Notification, repos.User, repos.Audit, match.SharedItemPolicy)
	postService := post.NewService(repos.Post, repos.Category, repos.Audit)
	postService.SetMatchService(matchService)
	reportService := report.NewService(repos.Report, repos.Post, repos.User, repos.Audit)
	dashboardService := dashboard.NewService(repos.User, repos.Post, repos.Message, repos.MatchedItem, repos.Report)
	auditService := audit.NewService(repos.Audit)

	return &Services{
		Auth:         authService,
		User:         userService,
		Post:         postService,
		Match:        matchService,
		Notification: notificationService,
		Message:      messageService,
		Category:     categoryService,
		Report:       reportService,
		Dashboard:    dashboardService,
		Audit:        auditService,
	}
}
