package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service/message"
	"foundit-fast/internal/service/user"
)

type env struct {
	repos *repository.Repositories
	svc   user.Service
	admin *domain.User
	john  *domain.User
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	repos := repository.NewRepositories()
	messageSvc := message.NewService(repos.Message, repos.User, repos.Post)
	svc := user.NewService(repos.User, repos.Session, repos.Audit, messageSvc)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.User{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, Status: domain.UserActive, PasswordHash: string(hash)}
	john := &domain.User{ID: uuid.New(), Name: "John Doe", Email: "john@example.com", Role: domain.RoleUser, Status: domain.UserActive, PasswordHash: string(hash)}
	require.NoError(t, repos.User.Create(ctx, admin))
	require.NoError(t, repos.User.Create(ctx, john))

	return &env{repos: repos, svc: svc, admin: admin, john: john}
}

func TestUserService_UpdateProfile(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	name := "Johnny Doe"
	phone := "5550199"
	updated, err := e.svc.UpdateProfile(ctx, e.john.ID, domain.UpdateProfileInput{Name: &name, Phone: &phone})

	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, e.john.Email, updated.Email)

	_, err = e.svc.UpdateProfile(ctx, uuid.New(), domain.UpdateProfileInput{Name: &name})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		err := e.svc.ChangePassword(ctx, e.john.ID, domain.ChangePasswordInput{
			CurrentPassword: "nope", NewPassword: "newpassword1",
		})
		assert.ErrorIs(t, err, user.ErrWrongPassword)
	})

	t.Run("success revokes sessions", func(t *testing.T) {
		session := &repository.Session{ID: uuid.New(), UserID: e.john.ID, TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}
		require.NoError(t, e.repos.Session.Create(ctx, session))

		err := e.svc.ChangePassword(ctx, e.john.ID, domain.ChangePasswordInput{
			CurrentPassword: "password123", NewPassword: "newpassword1",
		})
		require.NoError(t, err)

		got, err := e.repos.User.GetByID(ctx, e.john.ID)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("newpassword1")))

		s, err := e.repos.Session.GetByTokenHash(ctx, "abc")
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestUserService_ToggleStatus(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	session := &repository.Session{ID: uuid.New(), UserID: e.john.ID, TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, e.repos.Session.Create(ctx, session))

	blocked, err := e.svc.ToggleStatus(ctx, e.admin, e.john.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserBlocked, blocked.Status)

	// Blocking kills the user's sessions.
	s, err := e.repos.Session.GetByTokenHash(ctx, "abc")
	require.NoError(t, err)
	assert.Nil(t, s)

	active, err := e.svc.ToggleStatus(ctx, e.admin, e.john.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserActive, active.Status)

	entries, err := e.repos.Audit.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.AuditActionUnblockUser, entries[0].Action)
	assert.Equal(t, domain.AuditActionBlockUser, entries[1].Action)
}

func TestUserService_Unblock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.ToggleStatus(ctx, e.admin, e.john.ID)
	require.NoError(t, err)

	require.NoError(t, e.svc.Unblock(ctx, e.admin, e.john.ID))

	got, err := e.repos.User.GetByID(ctx, e.john.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserActive, got.Status)

	// The user gets an admin message about the unblock.
	inbox, err := e.repos.Message.Inbox(ctx, e.john.ID)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Your Account Has Been Unblocked", inbox[0].Subject)
	assert.Equal(t, "Admin", inbox[0].FromUserName)
}

func TestUserService_Delete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.svc.Delete(ctx, e.admin, e.john.ID))

	_, err := e.svc.GetByID(ctx, e.john.ID)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	entries, err := e.repos.Audit.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AuditActionDeleteUser, entries[0].Action)
	assert.Equal(t, e.john.Email, entries[0].Detail)

	assert.ErrorIs(t, e.svc.Delete(ctx, e.admin, e.john.ID), user.ErrUserNotFound)
}
