package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/pkg/validate"
	"foundit-fast/internal/service/message"
)

type MessageHandler struct {
	messageService message.Service
}

func NewMessageHandler(messageService message.Service) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) Send(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.SendMessageInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	msg, err := h.messageService.Send(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// ContactOwner lets any user write to the owner of a listing, e.g. "I
// think I found your item".
func (h *MessageHandler) ContactOwner(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.ContactOwnerInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	msg, err := h.messageService.ContactOwner(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}

func (h *MessageHandler) Inbox(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	msgs, err := h.messageService.Inbox(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": msgs,
		"total":    len(msgs),
	})
}

func (h *MessageHandler) Sent(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	msgs, err := h.messageService.Sent(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"messages": msgs,
		"total":    len(msgs),
	})
}

func (h *MessageHandler) UnreadCount(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	count, err := h.messageService.UnreadCount(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count": count,
	})
}

// ToggleRead flips the read flag and reports the new state.
func (h *MessageHandler) ToggleRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	isRead, err := h.messageService.ToggleRead(c.Context(), userID, id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"is_read": isRead,
	})
}

func (h *MessageHandler) MarkRead(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	if err := h.messageService.MarkRead(c.Context(), userID, id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *MessageHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid message ID")
	}

	if err := h.messageService.Delete(c.Context(), userID, id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
