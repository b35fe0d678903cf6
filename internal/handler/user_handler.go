package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var input domain.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	user, err := h.userService.UpdateProfile(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) ListExperts(c *fiber.Ctx) error {
	filter := domain.ExpertFilter{
		Search: c.Query("search"),
	}

	resp, err := h.userService.ListExperts(c.Context(), filter, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *UserHandler) GetExpert(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	expert, err := h.userService.GetExpert(c.Context(), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(expert)
}
