package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/middleware"
	"foundit-fast/internal/service/match"
)

type MatchHandler struct {
	matchService match.Service
}

func NewMatchHandler(matchService match.Service) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) Mine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	matches, err := h.matchService.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"matches": matches,
		"total":   len(matches),
	})
}

func (h *MatchHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	m, err := h.matchService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(m)
}

// Resolve closes out a match. Only a participant of the match or an admin
// can do it; the cascade to posts and related notifications happens in the
// service.
func (h *MatchHandler) Resolve(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid match ID")
	}

	m, err := h.matchService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if !user.IsAdmin() && !m.Involves(user.ID) {
		return middleware.Forbidden("Only a participant can resolve this match")
	}

	if err := h.matchService.Resolve(c.Context(), id, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Match resolved",
	})
}
