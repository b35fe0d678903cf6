package handler

import (
	"github.com/gofiber/fiber/v2"

	"soulsynergy/internal/middleware"
	"soulsynergy/internal/service"
)

type MediaHandler struct {
	mediaService service.MediaService
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	if file.Size > 10*1024*1024 {
		return middleware.BadRequest("File size must be less than 10MB")
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	uploaded, err := h.mediaService.Upload(c.Context(), userID, file.Filename, file.Size, mimeType, fileReader)
	if err != nil {
		if err == service.ErrValidation {
			return middleware.BadRequest("Only image files up to 10MB are allowed")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(uploaded)
}
