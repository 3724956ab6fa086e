package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/pkg/validate"
	"foundit-fast/internal/service/category"
)

type CategoryHandler struct {
	categoryService category.Service
}

func NewCategoryHandler(categoryService category.Service) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"categories": categories,
		"total":      len(categories),
	})
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCategoryInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	cat, err := h.categoryService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(cat)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid category ID")
	}

	if err := h.categoryService.Delete(c.Context(), id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
