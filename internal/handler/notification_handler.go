package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/middleware"
	"foundit-fast/internal/service/notification"
)

type NotificationHandler struct {
	notifService notification.Service
	readDelay    time.Duration
}

func NewNotificationHandler(notifService notification.Service, readDelay time.Duration) *NotificationHandler {
	return &NotificationHandler{notifService: notifService, readDelay: readDelay}
}

// List returns the user's feed, newest first. Viewing the feed arms a
// short deferred sweep that marks everything read, so the unread badge
// clears a moment after the user has seen the list.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notifs, err := h.notifService.List(c.Context(), userID)
	if err != nil {
		return err
	}

	h.notifService.ScheduleMarkAllRead(userID, h.readDelay)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifs,
		"total":         len(notifs),
	})
}

// Pending lists the match notifications that still await a resolution,
// without arming the read sweep.
func (h *NotificationHandler) Pending(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	notifs, err := h.notifService.ListPending(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notifications": notifs,
		"total":         len(notifs),
	})
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	count, err := h.notifService.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.MarkAsRead(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	if err := h.notifService.MarkAllAsRead(c.Context(), userID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid notification ID")
	}

	if err := h.notifService.Delete(c.Context(), userID, id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
