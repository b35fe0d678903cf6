package unit_test

import (
	"context"
	"testing"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditService_ListByEntity(t *testing.T) {
	ctx := context.Background()
	params := domain.DefaultPagination()

	t.Run("Rejects unknown entity type", func(t *testing.T) {
		mockRepo := new(mocks.AdminLogRepository)
		svc := service.NewAuditService(mockRepo)

		_, err := svc.ListByEntity(ctx, "invoice", uuid.New(), params)

		assert.ErrorIs(t, err, service.ErrValidation)
		mockRepo.AssertNotCalled(t, "ListByEntity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Returns paginated logs for known entity type", func(t *testing.T) {
		mockRepo := new(mocks.AdminLogRepository)
		svc := service.NewAuditService(mockRepo)

		entityID := uuid.New()
		logs := []domain.AuditLog{
			{ID: uuid.New(), ActionType: domain.AuditActionApprove, EntityType: "article", EntityID: entityID},
			{ID: uuid.New(), ActionType: domain.AuditActionReject, EntityType: "article", EntityID: entityID},
		}
		mockRepo.On("ListByEntity", ctx, "article", entityID, params).Return(logs, int64(2), nil).Once()

		result, err := svc.ListByEntity(ctx, "article", entityID, params)

		assert.NoError(t, err)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, int64(2), result.TotalItems)
		mockRepo.AssertExpectations(t)
	})
}

func TestAuditService_Stats(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.AdminLogRepository)
	svc := service.NewAuditService(mockRepo)

	adminID := uuid.New()
	mockRepo.On("StatsByActionType", ctx).Return([]domain.ActionTypeStat{
		{ActionType: domain.AuditActionApprove, Count: 12},
	}, nil).Once()
	mockRepo.On("StatsByEntityType", ctx).Return([]domain.EntityTypeStat{
		{EntityType: "article", Count: 8},
		{EntityType: "event", Count: 4},
	}, nil).Once()
	mockRepo.On("TopAdminsByActivity", ctx, 10).Return([]domain.AdminActivityStat{
		{AdminID: adminID, Count: 12},
	}, nil).Once()

	stats, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Len(t, stats.ByActionType, 1)
	assert.Len(t, stats.ByEntityType, 2)
	assert.Equal(t, adminID, stats.TopAdmins[0].AdminID)
	mockRepo.AssertExpectations(t)
}
