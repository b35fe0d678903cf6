package service

import (
	"context"

	"github.com/google/uuid"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

type AuditService interface {
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error)
	Stats(ctx context.Context) (*domain.AuditStats, error)
}

type auditService struct {
	adminLogRepo repository.AdminLogRepository
}

func NewAuditService(adminLogRepo repository.AdminLogRepository) AuditService {
	return &auditService{adminLogRepo: adminLogRepo}
}

func (s *auditService) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	logs, total, err := s.adminLogRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}

func (s *auditService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.AuditLog], error) {
	switch entityType {
	case "article", "event", "user", "product":
	default:
		return domain.PaginatedResponse[domain.AuditLog]{}, ErrValidation
	}

	logs, total, err := s.adminLogRepo.ListByEntity(ctx, entityType, entityID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.AuditLog]{}, err
	}
	return domain.NewPaginatedResponse(logs, params.Page, params.PageSize, total), nil
}

func (s *auditService) Stats(ctx context.Context) (*domain.AuditStats, error) {
	byAction, err := s.adminLogRepo.StatsByActionType(ctx)
	if err != nil {
		return nil, err
	}
	byEntity, err := s.adminLogRepo.StatsByEntityType(ctx)
	if err != nil {
		return nil, err
	}
	topAdmins, err := s.adminLogRepo.TopAdminsByActivity(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &domain.AuditStats{
		ByActionType: byAction,
		ByEntityType: byEntity,
		TopAdmins:    topAdmins,
	}, nil
}
