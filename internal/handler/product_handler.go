package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	product, err := h.productService.Create(c.Context(), middleware.GetCurrentUser(c), input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productService.Get(c.Context(), id)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) ListByExpert(c *fiber.Ctx) error {
	expertID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.productService.ListByExpert(c.Context(), middleware.GetCurrentUser(c), expertID, getPaginationParams(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input domain.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	product, err := h.productService.Update(c.Context(), middleware.GetCurrentUser(c), id, input)
	if err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Context(), middleware.GetCurrentUser(c), id); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product deleted",
	})
}
