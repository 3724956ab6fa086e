package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foundit-fast/internal/domain"
)

// Seed loads the demo dataset: a few users, the fixed category set, sample
// lost/found posts, a message thread and one pre-existing match with its
// notifications. Demo passwords are "password123" for users and
// "adminpass123" for the admin account.
func Seed(ctx context.Context, repos *Repositories) error {
	userHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	adminHash, err := bcrypt.GenerateFromPassword([]byte("adminpass123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()

	john := domain.User{
		ID: uuid.New(), Name: "John Doe", Email: "john.doe@email.com",
		Phone: "1234567890", PasswordHash: string(userHash),
		Role: domain.RoleUser, Status: domain.UserActive, CreatedAt: now.Add(-30 * 24 * time.Hour),
	}
	jane := domain.User{
		ID: uuid.New(), Name: "Jane Smith", Email: "jane.smith@email.com",
		Phone: "9876543210", PasswordHash: string(userHash),
		Role: domain.RoleUser, Status: domain.UserActive, CreatedAt: now.Add(-29 * 24 * time.Hour),
	}
	mike := domain.User{
		ID: uuid.New(), Name: "Mike Johnson", Email: "mike.johnson@email.com",
		Phone: "5555555555", PasswordHash: string(userHash),
		Role: domain.RoleUser, Status: domain.UserActive, CreatedAt: now.Add(-28 * 24 * time.Hour),
	}
	admin := domain.User{
		ID: uuid.New(), Name: "Admin User", Email: "admin@founditfast.com",
		Phone: "1111111111", PasswordHash: string(adminHash),
		Role: domain.RoleAdmin, Status: domain.UserActive, CreatedAt: now.Add(-300 * 24 * time.Hour),
	}
	for _, u := range []domain.User{john, jane, mike, admin} {
		if err := repos.User.Create(ctx, &u); err != nil {
			return err
		}
	}

	categories := []domain.Category{
		{ID: uuid.New(), Name: "Electronics", Description: "Mobile phones, laptops, tablets, etc."},
		{ID: uuid.New(), Name: "Documents", Description: "ID cards, passports, certificates, etc."},
		{ID: uuid.New(), Name: "Personal Items", Description: "Wallets, keys, jewelry, etc."},
		{ID: uuid.New(), Name: "Bags & Accessories", Description: "Handbags, backpacks, watches, etc."},
		{ID: uuid.New(), Name: "Clothing", Description: "Jackets, shoes, scarves, etc."},
	}
	for _, c := range categories {
		if err := repos.Category.Create(ctx, &c); err != nil {
			return err
		}
	}

	lostPhone := domain.Post{
		ID: uuid.New(), UserID: john.ID, Kind: domain.KindLost,
		Title:       "Lost iPhone 13 Pro",
		Description: "Black iPhone 13 Pro with blue case. Lost at Central Park near the fountain.",
		Category:    "Electronics", Location: "Central Park, NYC",
		ItemDate: now.Add(-5 * 24 * time.Hour).Format("2006-01-02"),
		ContactInfo: john.Email, Status: domain.PostActive, CreatedAt: now.Add(-4 * 24 * time.Hour),
	}
	lostWallet := domain.Post{
		ID: uuid.New(), UserID: jane.ID, Kind: domain.KindLost,
		Title:       "Missing Brown Wallet",
		Description: "Brown leather wallet with multiple cards and some cash. Lost near subway station.",
		Category:    "Personal Items", Location: "Times Square Station, NYC",
		ItemDate: now.Add(-6 * 24 * time.Hour).Format("2006-01-02"),
		ContactInfo: jane.Email, Status: domain.PostActive, CreatedAt: now.Add(-6 * 24 * time.Hour),
	}
	foundWatch := domain.Post{
		ID: uuid.New(), UserID: jane.ID, Kind: domain.KindFound,
		Title:       "Found Silver Watch",
		Description: "Silver wrist watch found on park bench. Has initials R.M. engraved on back.",
		Category:    "Bags & Accessories", Location: "Madison Square Park",
		ItemDate: now.Add(-7 * 24 * time.Hour).Format("2006-01-02"),
		ContactInfo: jane.Email, Status: domain.PostActive, CreatedAt: now.Add(-7 * 24 * time.Hour),
	}
	foundID := domain.Post{
		ID: uuid.New(), UserID: john.ID, Kind: domain.KindFound,
		Title:       "Found Student ID Card",
		Description: "NYU student ID card found in library. Belongs to Sarah Johnson.",
		Category:    "Documents", Location: "NYU Library",
		ItemDate: now.Add(-8 * 24 * time.Hour).Format("2006-01-02"),
		ContactInfo: john.Email, Status: domain.PostActive, CreatedAt: now.Add(-8 * 24 * time.Hour),
	}
	for _, p := range []domain.Post{lostPhone, lostWallet, foundWatch, foundID} {
		if err := repos.Post.Create(ctx, &p); err != nil {
			return err
		}
	}

	messages := []domain.Message{
		{
			ID: uuid.New(), FromUserID: john.ID, FromUserName: john.Name,
			ToUserID: jane.ID, ToUserName: jane.Name,
			Subject: "About the silver watch",
			Body:    "Hi, I saw your post about the silver watch. My friend lost one just like that. Can you share more details?",
			PostID:  &foundWatch.ID, IsRead: true, CreatedAt: now.Add(-26 * time.Hour),
		},
		{
			ID: uuid.New(), FromUserID: jane.ID, FromUserName: jane.Name,
			ToUserID: john.ID, ToUserName: john.Name,
			Subject: "Re: About the silver watch",
			Body:    "Sure! The watch has a leather strap and the initials R.M. on the back. Where did your friend lose it?",
			PostID:  &foundWatch.ID, CreatedAt: now.Add(-25 * time.Hour),
		},
		{
			ID: uuid.New(), FromUserID: mike.ID, FromUserName: mike.Name,
			ToUserID: john.ID, ToUserName: john.Name,
			Subject: "Your Lost Item Alert",
			Body:    "Hi John, I think I might have seen your iPhone at Central Park yesterday. Please contact me!",
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
	for _, m := range messages {
		if err := repos.Message.Create(ctx, &m); err != nil {
			return err
		}
	}

	match := domain.MatchedItem{
		ID:                 uuid.New(),
		LostItemID:         lostPhone.ID,
		LostItemTitle:      lostPhone.Title,
		LostItemOwnerID:    john.ID,
		LostItemOwnerName:  john.Name,
		FoundItemID:        foundWatch.ID,
		FoundItemTitle:     foundWatch.Title,
		FoundItemOwnerID:   jane.ID,
		FoundItemOwnerName: jane.Name,
		MatchPercentage:    95,
		MatchReason:        "Similar category, location and description",
		Status:             domain.MatchPending,
		MatchedAt:          now.Add(-20 * time.Hour),
	}
	if err := repos.MatchedItem.Create(ctx, &match); err != nil {
		return err
	}

	notifications := []domain.Notification{
		{
			ID: uuid.New(), UserID: john.ID, Type: domain.NotifMatch,
			Title:       "Lost Item Match Found!",
			Message:     "Your lost item \"Lost iPhone 13 Pro\" may match with a found item reported by Jane Smith!",
			LostItemID:  &lostPhone.ID, FoundItemID: &foundWatch.ID,
			Finder:      &domain.FinderInfo{Name: jane.Name, Email: jane.Email, Contact: jane.Email},
			Percentage:  95, Reason: match.MatchReason, Status: domain.MatchPending,
			CreatedAt: now.Add(-20 * time.Hour),
		},
		{
			ID: uuid.New(), UserID: john.ID, Type: domain.NotifMessage,
			Title:     "New Message",
			Message:   "Jane Smith sent you a message about your lost iPhone",
			CreatedAt: now.Add(-19 * time.Hour),
		},
	}
	for _, n := range notifications {
		if err := repos.Notification.Create(ctx, &n); err != nil {
			return err
		}
	}

	return nil
}
