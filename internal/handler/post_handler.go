package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"foundit-fast/internal/domain"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/pkg/validate"
	"foundit-fast/internal/service/post"
)

type PostHandler struct {
	postService post.Service
}

func NewPostHandler(postService post.Service) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	var input domain.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	created, matches, err := h.postService.Create(c.Context(), user, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"post":    created,
		"matches": matches,
	})
}

func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	p, err := h.postService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(p)
}

// Browse lists the active posts of one board side, lost or found.
func (h *PostHandler) Browse(c *fiber.Ctx) error {
	kind := domain.PostKind(c.Query("kind"))
	if kind != domain.KindLost && kind != domain.KindFound {
		return middleware.BadRequest("kind must be lost or found")
	}

	posts, err := h.postService.Browse(c.Context(), kind)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *PostHandler) Search(c *fiber.Ctx) error {
	var filter domain.SearchFilter
	if err := c.QueryParser(&filter); err != nil {
		return middleware.BadRequest("Invalid query parameters")
	}

	posts, err := h.postService.Search(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *PostHandler) Mine(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	posts, err := h.postService.ListByUser(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	posts, err := h.postService.List(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"posts": posts,
		"total": len(posts),
	})
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	var input domain.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return middleware.BadRequest(err.Error())
	}

	updated, err := h.postService.Update(c.Context(), user, id, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not found")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid post ID")
	}

	if err := h.postService.Delete(c.Context(), user, id); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}
