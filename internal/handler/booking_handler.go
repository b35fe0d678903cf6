package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type BookingHandler struct {
	bookingService service.BookingService
}

func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateBookingInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	booking, err := h.bookingService.Create(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.bookingService.Get(c.Context(), middleware.GetCurrentUser(c), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(booking)
}

func (h *BookingHandler) ListMine(c *fiber.Ctx) error {
	resp, err := h.bookingService.ListMine(c.Context(), middleware.GetCurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookingHandler) ListForExpert(c *fiber.Ctx) error {
	resp, err := h.bookingService.ListForExpert(c.Context(), middleware.GetCurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *BookingHandler) Confirm(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookingService.Confirm(c.Context(), middleware.GetCurrentUser(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Booking confirmed",
	})
}

func (h *BookingHandler) Reject(c *fiber.Ctx) error {
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

	if err := h.bookingService.Reject(c.Context(), middleware.GetCurrentUser(c), id, input.Reason); err != nil {
		if err == service.ErrValidation {
			return middleware.BadRequest("Rejection reason is required")
		}
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Booking rejected",
	})
}

func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookingService.Cancel(c.Context(), middleware.GetCurrentUser(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Booking cancelled",
	})
}
