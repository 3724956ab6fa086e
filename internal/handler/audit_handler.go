package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"foundit-fast/internal/service/audit"
)

type AuditHandler struct {
	auditService audit.Service
}

func NewAuditHandler(auditService audit.Service) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) Recent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	entries, err := h.auditService.Recent(c.Context(), limit)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"entries": entries,
		"total":   len(entries),
	})
}
