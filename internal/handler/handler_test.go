package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foundit-fast/internal/config"
	"foundit-fast/internal/domain"
	"foundit-fast/internal/handler"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:             "test-secret",
		JWTAccessExpiry:       15 * time.Minute,
		JWTRefreshExpiry:      24 * time.Hour,
		OTPExpiry:             10 * time.Minute,
		NotificationReadDelay: time.Hour, // keep the sweep out of the way
	}

	repos := repository.NewRepositories()
	services := service.NewServices(repos, cfg)
	h := handler.NewHandlers(services, cfg)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})

	v1 := app.Group("/api/v1")
	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))
	protected.Get("/users/me", h.User.Me)

	posts := protected.Group("/posts")
	posts.Post("/", h.Post.Create)
	posts.Get("/", h.Post.Browse)

	matches := protected.Group("/matches")
	matches.Get("/", h.Match.Mine)
	matches.Get("/:id", h.Match.GetByID)
	matches.Post("/:id/resolve", h.Match.Resolve)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)

	categories := protected.Group("/categories")
	categories.Get("/", h.Category.List)
	categories.Post("/", middleware.RequireAdmin(), h.Category.Create)

	// Categories are normally seeded; plant one directly for the tests.
	electronics := domain.Category{ID: uuid.New(), Name: "Electronics", Description: "Phones, laptops, tablets"}
	require.NoError(t, repos.Category.Create(context.Background(), &electronics))

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func register(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAPI_AuthFlow(t *testing.T) {
	app := newTestApp(t)

	t.Run("protected route rejects anonymous calls", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/users/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", body["code"])
	})

	token := register(t, app, "John Doe", "john@example.com")

	t.Run("me", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/users/me", token, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "john@example.com", body["email"])
		_, leaked := body["password_hash"]
		assert.False(t, leaked)
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
			"name": "Imposter", "email": "john@example.com", "password": "password123",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "CONFLICT", body["code"])
	})

	t.Run("bad login", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", map[string]any{
			"email": "john@example.com", "password": "wrong-password",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("regular user cannot reach admin routes", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/categories/", token, map[string]any{
			"name": "Vehicles", "description": "Bikes and scooters",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestAPI_ReportMatchResolveFlow(t *testing.T) {
	app := newTestApp(t)

	ownerToken := register(t, app, "John Doe", "john@example.com")
	finderToken := register(t, app, "Jane Smith", "jane@example.com")

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/posts/", ownerToken, map[string]any{
		"kind":         "lost",
		"title":        "Lost iPhone 13",
		"category":     "Electronics",
		"description":  "black iphone with a cracked screen",
		"location":     "Central Park",
		"item_date":    "2026-08-20",
		"contact_info": "john@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts/", finderToken, map[string]any{
		"kind":         "found",
		"title":        "Found a phone",
		"category":     "Electronics",
		"description":  "black iphone cracked screen found near the fountain",
		"location":     "central park fountain",
		"item_date":    "2026-08-21",
		"contact_info": "jane@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	matches, ok := body["matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 1)

	// The owner sees the match notification.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/notifications/unread-count", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/matches/", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list, ok := body["matches"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	matchID := list[0].(map[string]any)["id"].(string)

	t.Run("outsider cannot resolve", func(t *testing.T) {
		outsider := register(t, app, "Mike Johnson", "mike@example.com")
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/matches/%s/resolve", matchID), outsider, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("participant resolves", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/matches/%s/resolve", matchID), ownerToken, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Both posts left the public board.
		for _, kind := range []string{"lost", "found"} {
			resp, body := doJSON(t, app, http.MethodGet, "/api/v1/posts/?kind="+kind, ownerToken, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, float64(0), body["total"])
		}

		// The cascade marked the match notification read.
		resp, body := doJSON(t, app, http.MethodGet, "/api/v1/notifications/unread-count", ownerToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, float64(0), body["count"])
	})

	t.Run("malformed match id", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/matches/not-a-uuid/resolve", ownerToken, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("resolving a match that does not exist", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/v1/matches/%s/resolve", uuid.New()), ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})

	t.Run("fetching a match that does not exist", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/v1/matches/%s", uuid.New()), ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", body["code"])
	})
}
