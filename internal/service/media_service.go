package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"soulsynergy/internal/config"
)

const maxUploadSize = 10 << 20 // 10 MB

type UploadedFile struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type MediaService interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*UploadedFile, error)
}

type mediaService struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewMediaService(minioClient *minio.Client, cfg *config.Config) MediaService {
	return &mediaService{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *mediaService) Upload(ctx context.Context, userID uuid.UUID, fileName string, fileSize int64, mimeType string, reader io.Reader) (*UploadedFile, error) {
	if fileSize <= 0 || fileSize > maxUploadSize {
		return nil, ErrValidation
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, ErrValidation
	}
	if s.minioClient == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	storagePath := fmt.Sprintf("uploads/%s/%s/%s", userID.String(), time.Now().Format("2006/01"), uuid.New().String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return &UploadedFile{
		URL:      s.getPublicURL(storagePath),
		FileName: fileName,
		Size:     fileSize,
		MimeType: mimeType,
	}, nil
}

func (s *mediaService) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
