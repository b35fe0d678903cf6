package unit_test

import (
	"context"
	"testing"

	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/stretchr/testify/assert"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(mocks.UserRepository)
	mockBookingRepo := new(mocks.BookingRepository)
	mockArticleRepo := new(mocks.ArticleRepository)
	mockEventRepo := new(mocks.EventRepository)
	svc := service.NewDashboardService(mockUserRepo, mockBookingRepo, mockArticleRepo, mockEventRepo, nil)

	mockUserRepo.On("CountByRole", ctx).Return(map[string]int64{"client": 120, "expert": 15, "admin": 2}, nil).Once()
	mockBookingRepo.On("CountByStatus", ctx).Return(map[string]int64{"pending": 7, "confirmed": 31}, nil).Once()
	mockArticleRepo.On("CountPending", ctx).Return(int64(3), nil).Once()
	mockEventRepo.On("CountPending", ctx).Return(int64(1), nil).Once()

	stats, err := svc.Stats(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(15), stats.UsersByRole["expert"])
	assert.Equal(t, int64(7), stats.BookingsByStatus["pending"])
	assert.Equal(t, int64(3), stats.PendingArticles)
	assert.Equal(t, int64(1), stats.PendingEvents)
	mockUserRepo.AssertExpectations(t)
	mockBookingRepo.AssertExpectations(t)
}
