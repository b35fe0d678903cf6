package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.paymentService.CreatePayment(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	resp, err := h.paymentService.ListMine(c.Context(), middleware.GetCurrentUserID(c), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

// Webhook is called by the payment provider, not by users. A 200 response
// acknowledges the event; anything else makes the provider retry.
func (h *PaymentHandler) Webhook(c *fiber.Ctx) error {
	var payload domain.WebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return middleware.BadRequest("Invalid webhook payload")
	}
	if payload.Object.ID == "" {
		return middleware.BadRequest("Missing payment id")
	}

	if err := h.paymentService.HandleWebhook(c.Context(), payload); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusOK)
}
