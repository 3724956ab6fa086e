package dashboard

import (
	"context"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
)

type Service interface {
	Stats(ctx context.Context) (*domain.Stats, error)
}

type service struct {
	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchedItemRepository
	reportRepo  repository.ReportRepository
}

func NewService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	messageRepo repository.MessageRepository,
	matchRepo repository.MatchedItemRepository,
	reportRepo repository.ReportRepository,
) Service {
	return &service{
		userRepo:    userRepo,
		postRepo:    postRepo,
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		reportRepo:  reportRepo,
	}
}

func (s *service) Stats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Role == domain.RoleUser {
			stats.TotalUsers++
		}
		if users[i].Status == domain.UserBlocked {
			stats.BlockedUsers++
		}
	}

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalPosts = len(posts)
	for i := range posts {
		p := posts[i]
		if p.Status == domain.PostActive {
			stats.ActivePosts++
			switch p.Kind {
			case domain.KindLost:
				stats.LostItems++
			case domain.KindFound:
				stats.FoundItems++
			}
		}
	}

	stats.TotalMessages, err = s.messageRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalMatches = len(matches)
	for i := range matches {
		if matches[i].Status == domain.MatchPending {
			stats.PendingMatches++
		}
	}

	itemReports, err := s.reportRepo.ListItemReports(ctx)
	if err != nil {
		return nil, err
	}
	for i := range itemReports {
		if itemReports[i].Status == domain.ReportPending {
			stats.PendingItemReports++
		}
	}
	userReports, err := s.reportRepo.ListUserReports(ctx)
	if err != nil {
		return nil, err
	}
	for i := range userReports {
		if userReports[i].Status == domain.ReportPending {
			stats.PendingUserReports++
		}
	}

	return stats, nil
}
