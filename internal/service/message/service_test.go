package message_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/message"
)

func setup(t *testing.T, withAdmin bool) (message.Service, *repository.Repositories, *domain.User, *domain.User) {
	t.Helper()
	repos := repository.NewRepositories()
	svc := message.NewService(repos.Message, repos.User, repos.Post)

	user := &domain.User{ID: uuid.New(), Name: "John Doe", Email: "john@example.com", Role: domain.RoleUser}
	require.NoError(t, repos.User.Create(context.Background(), user))

	var admin *domain.User
	if withAdmin {
		admin = &domain.User{ID: uuid.New(), Name: "Site Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
		require.NoError(t, repos.User.Create(context.Background(), admin))
	}
	return svc, repos, user, admin
}

func TestMessageService_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("regular user is routed to the admin team", func(t *testing.T) {
		svc, _, user, admin := setup(t, true)

		msg, err := svc.Send(ctx, user, domain.SendMessageInput{
			RecipientEmail: "whoever@example.com", // ignored for non-admins
			Subject:        "Question about my post",
			Body:           "Hello",
		})

		require.NoError(t, err)
		assert.Equal(t, admin.ID, msg.ToUserID)
		assert.Equal(t, "Contact: Question about my post", msg.Subject)
		assert.False(t, msg.IsRead)
	})

	t.Run("no admin registered", func(t *testing.T) {
		svc, _, user, _ := setup(t, false)

		_, err := svc.Send(ctx, user, domain.SendMessageInput{
			RecipientEmail: "whoever@example.com",
			Subject:        "Hello",
			Body:           "Hello",
		})

		assert.ErrorIs(t, err, message.ErrAdminUnavailable)
	})

	t.Run("admin can message any registered email", func(t *testing.T) {
		svc, _, user, admin := setup(t, true)

		msg, err := svc.Send(ctx, admin, domain.SendMessageInput{
			RecipientEmail: user.Email,
			Subject:        "Account notice",
			Body:           "Please update your contact info",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, msg.ToUserID)
		assert.Equal(t, "Account notice", msg.Subject)
	})

	t.Run("admin to unknown email", func(t *testing.T) {
		svc, _, _, admin := setup(t, true)

		_, err := svc.Send(ctx, admin, domain.SendMessageInput{
			RecipientEmail: "ghost@example.com",
			Subject:        "Hello",
			Body:           "Hello",
		})

		assert.ErrorIs(t, err, message.ErrRecipientNotFound)
	})
}

func TestMessageService_ContactOwner(t *testing.T) {
	ctx := context.Background()

	svc, repos, user, admin := setup(t, true)
	owner := &domain.User{ID: uuid.New(), Name: "Sarah Wilson", Email: "sarah@example.com", Role: domain.RoleUser}
	require.NoError(t, repos.User.Create(ctx, owner))

	post := &domain.Post{
		ID:     uuid.New(),
		UserID: owner.ID,
		Kind:   domain.KindLost,
		Title:  "Lost iPhone 13",
		Status: domain.PostActive,
	}
	require.NoError(t, repos.Post.Create(ctx, post))

	t.Run("message goes to the post owner with the post attached", func(t *testing.T) {
		msg, err := svc.ContactOwner(ctx, user, domain.ContactOwnerInput{
			PostID:  post.ID,
			Subject: "I think I found your phone",
			Body:    "Black iPhone near the fountain, is it yours?",
		})

		require.NoError(t, err)
		assert.Equal(t, owner.ID, msg.ToUserID)
		assert.Equal(t, "Sarah Wilson", msg.ToUserName)
		assert.Equal(t, "I think I found your phone", msg.Subject)
		require.NotNil(t, msg.PostID)
		assert.Equal(t, post.ID, *msg.PostID)
		assert.False(t, msg.IsRead)

		inbox, err := svc.Inbox(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, inbox, 1)
		assert.Equal(t, user.ID, inbox[0].FromUserID)
	})

	t.Run("owner cannot contact themselves", func(t *testing.T) {
		_, err := svc.ContactOwner(ctx, owner, domain.ContactOwnerInput{
			PostID:  post.ID,
			Subject: "Hello me",
			Body:    "Hello",
		})
		assert.ErrorIs(t, err, message.ErrOwnPost)
	})

	t.Run("unknown post", func(t *testing.T) {
		_, err := svc.ContactOwner(ctx, user, domain.ContactOwnerInput{
			PostID:  uuid.New(),
			Subject: "Hello",
			Body:    "Hello",
		})
		assert.ErrorIs(t, err, message.ErrPostNotFound)
	})

	t.Run("admin is not involved", func(t *testing.T) {
		adminInbox, err := svc.Inbox(ctx, admin.ID)
		require.NoError(t, err)
		assert.Empty(t, adminInbox)
	})
}

func TestMessageService_InboxAndSent(t *testing.T) {
	svc, _, user, admin := setup(t, true)
	ctx := context.Background()

	_, err := svc.Send(ctx, user, domain.SendMessageInput{
		RecipientEmail: admin.Email,
		Subject:        "First",
		Body:           "Hello",
	})
	require.NoError(t, err)
	_, err = svc.SendFromAdmin(ctx, admin, user, "Reply", "Hi there")
	require.NoError(t, err)

	inbox, err := svc.Inbox(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Reply", inbox[0].Subject)
	assert.Equal(t, "Admin", inbox[0].FromUserName)

	sent, err := svc.Sent(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "Contact: First", sent[0].Subject)

	adminInbox, err := svc.Inbox(ctx, admin.ID)
	require.NoError(t, err)
	assert.Len(t, adminInbox, 1)
}

func TestMessageService_ReadFlags(t *testing.T) {
	svc, _, user, admin := setup(t, true)
	ctx := context.Background()

	msg, err := svc.SendFromAdmin(ctx, admin, user, "Notice", "Body")
	require.NoError(t, err)

	count, err := svc.UnreadCount(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("only the recipient can flip the flag", func(t *testing.T) {
		err := svc.MarkRead(ctx, admin.ID, msg.ID)
		assert.ErrorIs(t, err, message.ErrNotParticipant)
	})

	t.Run("toggle", func(t *testing.T) {
		isRead, err := svc.ToggleRead(ctx, user.ID, msg.ID)
		require.NoError(t, err)
		assert.True(t, isRead)

		isRead, err = svc.ToggleRead(ctx, user.ID, msg.ID)
		require.NoError(t, err)
		assert.False(t, isRead)
	})

	t.Run("mark read then unread", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, user.ID, msg.ID))
		count, err := svc.UnreadCount(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		require.NoError(t, svc.MarkUnread(ctx, user.ID, msg.ID))
		count, err = svc.UnreadCount(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestMessageService_Delete(t *testing.T) {
	svc, _, user, admin := setup(t, true)
	ctx := context.Background()

	msg, err := svc.SendFromAdmin(ctx, admin, user, "Notice", "Body")
	require.NoError(t, err)

	t.Run("stranger cannot delete", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), msg.ID), message.ErrNotParticipant)
	})

	t.Run("sender can delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, admin.ID, msg.ID))
		assert.ErrorIs(t, svc.Delete(ctx, admin.ID, msg.ID), message.ErrMessageNotFound)
	})
}
