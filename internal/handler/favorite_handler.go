package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (h *FavoriteHandler) Toggle(c *fiber.Ctx) error {
	var input domain.ToggleFavoriteInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	favorited, err := h.favoriteService.Toggle(c.Context(), middleware.GetCurrentUserID(c), input.TargetType, input.TargetID)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"favorited": favorited,
	})
}

func (h *FavoriteHandler) Statuses(c *fiber.Ctx) error {
	var input struct {
		TargetType domain.FavoriteTarget `json:"target_type" validate:"required"`
		TargetIDs  []uuid.UUID           `json:"target_ids" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	statuses, err := h.favoriteService.Statuses(c.Context(), middleware.GetCurrentUserID(c), input.TargetType, input.TargetIDs)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(statuses)
}

func (h *FavoriteHandler) ListExperts(c *fiber.Ctx) error {
	entries, err := h.favoriteService.ListExperts(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *FavoriteHandler) ListEvents(c *fiber.Ctx) error {
	entries, err := h.favoriteService.ListEvents(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *FavoriteHandler) ListArticles(c *fiber.Ctx) error {
	entries, err := h.favoriteService.ListArticles(c.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *FavoriteHandler) ToggleArticleLike(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	liked, err := h.favoriteService.ToggleArticleLike(c.Context(), middleware.GetCurrentUserID(c), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"liked": liked,
	})
}
