package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type AdminHandler struct {
	userService      service.UserService
	auditService     service.AuditService
	dashboardService service.DashboardService
}

func NewAdminHandler(userService service.UserService, auditService service.AuditService, dashboardService service.DashboardService) *AdminHandler {
	return &AdminHandler{
		userService:      userService,
		auditService:     auditService,
		dashboardService: dashboardService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	resp, err := h.userService.ListAll(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AdminHandler) BanUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Ban(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User banned",
	})
}

func (h *AdminHandler) UnbanUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.Unban(c.Context(), middleware.GetCurrentUser(c), id, getClientInfo(c)); err != nil {
		return translateErr(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User unbanned",
	})
}

func (h *AdminHandler) ListAuditLogs(c *fiber.Ctx) error {
	resp, err := h.auditService.List(c.Context(), getPaginationParams(c))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AdminHandler) ListEntityAuditLogs(c *fiber.Ctx) error {
	entityID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.auditService.ListByEntity(c.Context(), c.Params("entity_type"), entityID, getPaginationParams(c))
	if err != nil {
		return translateErr(err)
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AdminHandler) AuditStats(c *fiber.Ctx) error {
	stats, err := h.auditService.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
