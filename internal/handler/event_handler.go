package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type EventHandler struct {
	eventService service.EventService
}

func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	event, err := h.eventService.Create(c.Context(), middleware.GetCurrentUserID(c), input)
	if err != nil {
		if err == service.ErrValidation {
			return middleware.BadRequest("Invalid event data: offline events require a valid city")
		}
		return translateErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	event, err := h.eventService.Get(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(event)
}

func (h *EventHandler) ListPublished(c *fiber.Ctx) error {
	resp, err := h.eventService.ListPublished(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *EventHandler) ListMine(c *fiber.Ctx) error {
	resp, err := h.eventService.ListMine(c.Context(), middleware.GetCurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *EventHandler) ListPending(c *fiber.Ctx) error {
	resp, err := h.eventService.ListPending(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *EventHandler) Publish(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Publish(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event submitted for moderation",
	})
}

func (h *EventHandler) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Approve(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event approved and published",
	})
}

func (h *EventHandler) Reject(c *fiber.Ctx) error {
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

	if err := h.eventService.Reject(c.Context(), middleware.GetCurrentUser(c), id, input.Reason, getClientInfo(c)); err != nil {
		if err == service.ErrValidation {
			return middleware.BadRequest("Rejection reason is required")
		}
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event rejected",
	})
}

func (h *EventHandler) Archive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Archive(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event archived",
	})
}

func (h *EventHandler) Unarchive(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Unarchive(c.Context(), middleware.GetCurrentUserID(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event restored",
	})
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateEventInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	event, err := h.eventService.Update(c.Context(), middleware.GetCurrentUser(c), id, input, getClientInfo(c))
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Event deleted",
	})
}

func (h *EventHandler) ListCities(c *fiber.Ctx) error {
	cities, err := h.eventService.ListCities(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(cities)
}
