package handler

import (
	"github.com/gofiber/fiber/v2"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/pkg/validate"
	"foundit-fast/internal/service/report"
)

type ReportHandler struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) ReportItem(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.ReportItemInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	r, err := h.reportService.ReportItem(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *ReportHandler) ReportUser(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.ReportUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	r, err := h.reportService.ReportUser(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *ReportHandler) ListItemReports(c *fiber.Ctx) error {
	reports, err := h.reportService.ListItemReports(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reports": reports,
		"total":   len(reports),
	})
}

func (h *ReportHandler) ListUserReports(c *fiber.Ctx) error {
	reports, err := h.reportService.ListUserReports(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reports": reports,
		"total":   len(reports),
	})
}
