package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.BadRequest("Invalid " + name)
	}
	return id, nil
}

func getClientInfo(c *fiber.Ctx) service.ClientInfo {
	return service.ClientInfo{
		IPAddress: middleware.GetClientIP(c),
		UserAgent: middleware.GetClientUserAgent(c),
	}
}

// translateErr maps service sentinels onto HTTP errors; anything else
// falls through to the global handler as a 500.
func translateErr(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return middleware.NotFound("Resource not found")
	case errors.Is(err, service.ErrForbidden):
		return middleware.Forbidden("You do not have access to this resource")
	case errors.Is(err, service.ErrInvalidState):
		return middleware.Conflict("Operation conflicts with the current state")
	case errors.Is(err, service.ErrValidation):
		return middleware.BadRequest("Invalid input")
	default:
		return err
	}
}
