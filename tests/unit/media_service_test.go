package unit_test

import (
	"context"
	"strings"
	"testing"

	"soulsynergy/internal/config"
	"soulsynergy/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMediaService_UploadValidation(t *testing.T) {
	ctx := context.Background()
	svc := service.NewMediaService(nil, &config.Config{})
	userID := uuid.New()
	body := strings.NewReader("not really a png")

	t.Run("Empty file rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, userID, "avatar.png", 0, "image/png", body)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("Oversized file rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, userID, "avatar.png", 11<<20, "image/png", body)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("Non-image mime type rejected", func(t *testing.T) {
		_, err := svc.Upload(ctx, userID, "doc.pdf", 1024, "application/pdf", body)
		assert.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("Missing storage surfaces a plain error", func(t *testing.T) {
		_, err := svc.Upload(ctx, userID, "avatar.png", 1024, "image/png", body)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, service.ErrValidation)
	})
}
