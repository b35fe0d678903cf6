package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type ArticleHandler struct {
	articleService service.ArticleService
}

func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateArticleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	article, err := h.articleService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	article, err := h.articleService.Get(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(article)
}

func (h *ArticleHandler) ListPublished(c *fiber.Ctx) error {
	resp, err := h.articleService.ListPublished(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ArticleHandler) ListMine(c *fiber.Ctx) error {
	resp, err := h.articleService.ListMine(c.Context(), middleware.GetCurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ArticleHandler) ListPending(c *fiber.Ctx) error {
	resp, err := h.articleService.ListPending(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ArticleHandler) Publish(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Publish(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article submitted for moderation",
	})
}

func (h *ArticleHandler) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Approve(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article approved and published",
	})
}

func (h *ArticleHandler) Reject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input struct {
		Reason string `json:"reason" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.articleService.Reject(c.Context(), middleware.GetCurrentUser(c), id, input.Reason, getClientInfo(c)); err != nil {
		if err == service.ErrValidation {
			return middleware.BadRequest("Rejection reason is required")
		}
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article rejected",
	})
}

func (h *ArticleHandler) Archive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Archive(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article archived",
	})
}

func (h *ArticleHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Unarchive(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article restored",
	})
}

func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateArticleInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	article, err := h.articleService.Update(c.Context(), middleware.GetCurrentUser(c), id, input, getClientInfo(c))
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(article)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.articleService.Delete(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Article deleted",
	})
}
