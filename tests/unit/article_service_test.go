package unit_test

import (
	"context"
	"strings"
	"testing"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/service"
	"soulsynergy/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func stringPtr(s string) *string { return &s }

func adminUser() *domain.User {
	return &domain.User{ID: uuid.New(), Role: "admin", FullName: "Admin"}
}

func expertUser() *domain.User {
	return &domain.User{ID: uuid.New(), Role: "expert", FullName: "Expert"}
}

func TestArticleService_Create(t *testing.T) {
	mockRepo := new(mocks.ArticleRepository)
	mockAuditRepo := new(mocks.AdminLogRepository)
	mockNotifSvc := new(mocks.NotificationService)

	svc := service.NewArticleService(mockRepo, mockAuditRepo, mockNotifSvc, nil)
	ctx := context.Background()
	authorID := uuid.New()

	t.Run("Success - starts as unpublished draft", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Article) bool {
			return a.AuthorID == authorID &&
				a.ModerationStatus == domain.ModerationDraft &&
				!a.IsPublished
		})).Return(nil).Once()

		article, err := svc.Create(ctx, authorID, domain.CreateArticleInput{
			Title:   "Дыхательные практики",
			Content: "Подробный разбор техник",
		})

		assert.NoError(t, err)
		assert.NotNil(t, article)
		assert.Equal(t, domain.ModerationDraft, article.ModerationStatus)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Validation Error - blank title", func(t *testing.T) {
		article, err := svc.Create(ctx, authorID, domain.CreateArticleInput{
			Title:   "   ",
			Content: "Текст",
		})

		assert.ErrorIs(t, err, service.ErrValidation)
		assert.Nil(t, article)
	})
}

func TestArticleService_Publish(t *testing.T) {
	ctx := context.Background()
	author := expertUser()
	articleID := uuid.New()

	draft := &domain.Article{
		ID:               articleID,
		AuthorID:         author.ID,
		Title:            "Черновик",
		ModerationStatus: domain.ModerationDraft,
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		mockRepo.On("GetByID", ctx, articleID).Return(draft, nil).Once()
		mockRepo.On("SubmitForModeration", ctx, articleID).Return(true, nil).Once()

		err := svc.Publish(ctx, author.ID, articleID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Forbidden - not the author", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		mockRepo.On("GetByID", ctx, articleID).Return(draft, nil).Once()

		err := svc.Publish(ctx, uuid.New(), articleID)

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockRepo.AssertNotCalled(t, "SubmitForModeration", mock.Anything, mock.Anything)
	})

	t.Run("Invalid State - already pending", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		mockRepo.On("GetByID", ctx, articleID).Return(draft, nil).Once()
		mockRepo.On("SubmitForModeration", ctx, articleID).Return(false, nil).Once()

		err := svc.Publish(ctx, author.ID, articleID)

		assert.ErrorIs(t, err, service.ErrInvalidState)
	})
}

func TestArticleService_Approve(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()
	authorID := uuid.New()
	articleID := uuid.New()

	pending := &domain.Article{
		ID:               articleID,
		AuthorID:         authorID,
		Title:            "На модерации",
		ModerationStatus: domain.ModerationPending,
	}

	t.Run("Success - notifies author and records audit row", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		mockAuditRepo := new(mocks.AdminLogRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewArticleService(mockRepo, mockAuditRepo, mockNotifSvc, nil)

		mockRepo.On("GetByID", ctx, articleID).Return(pending, nil).Once()
		mockRepo.On("Approve", ctx, articleID).Return(true, nil).Once()
		mockNotifSvc.On("Notify", ctx, authorID, domain.NotifArticleApproved,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.AdminID == admin.ID &&
				l.ActionType == domain.AuditActionApprove &&
				l.EntityType == "article" &&
				l.EntityID == articleID
		})).Return(nil).Once()

		err := svc.Approve(ctx, admin, articleID, service.ClientInfo{})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockAuditRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Invalid State - double approve", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), mockNotifSvc, nil)

		mockRepo.On("GetByID", ctx, articleID).Return(pending, nil).Once()
		mockRepo.On("Approve", ctx, articleID).Return(false, nil).Once()

		err := svc.Approve(ctx, admin, articleID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrInvalidState)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestArticleService_Reject(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()
	authorID := uuid.New()
	articleID := uuid.New()

	pending := &domain.Article{
		ID:               articleID,
		AuthorID:         authorID,
		Title:            "На модерации",
		ModerationStatus: domain.ModerationPending,
	}

	t.Run("Validation Error - blank reason", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		err := svc.Reject(ctx, admin, articleID, "   ", service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrValidation)
		mockRepo.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - author notified exactly once with the reason", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		mockAuditRepo := new(mocks.AdminLogRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewArticleService(mockRepo, mockAuditRepo, mockNotifSvc, nil)

		mockRepo.On("GetByID", ctx, articleID).Return(pending, nil).Once()
		mockRepo.On("Reject", ctx, articleID, "Недостаточно источников").Return(true, nil).Once()
		mockNotifSvc.On("Notify", ctx, authorID, domain.NotifArticleRejected,
			mock.AnythingOfType("string"),
			mock.MatchedBy(func(msg string) bool {
				return strings.Contains(msg, "Недостаточно источников")
			}), mock.Anything).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.ActionType == domain.AuditActionReject && l.EntityID == articleID
		})).Return(nil).Once()

		err := svc.Reject(ctx, admin, articleID, "Недостаточно источников", service.ClientInfo{})

		assert.NoError(t, err)
		mockNotifSvc.AssertNumberOfCalls(t, "Notify", 1)
		mockAuditRepo.AssertExpectations(t)
	})
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()
	admin := adminUser()
	author := expertUser()
	articleID := uuid.New()

	article := &domain.Article{
		ID:       articleID,
		AuthorID: author.ID,
		Title:    "Статья",
	}

	t.Run("Admin delete of foreign article notifies the author", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		mockAuditRepo := new(mocks.AdminLogRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewArticleService(mockRepo, mockAuditRepo, mockNotifSvc, nil)

		mockRepo.On("GetByID", ctx, articleID).Return(article, nil).Once()
		mockNotifSvc.On("Notify", ctx, author.ID, domain.NotifArticleDeleted,
			mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).Once()
		mockAuditRepo.On("Create", ctx, mock.MatchedBy(func(l *domain.AuditLog) bool {
			return l.ActionType == domain.AuditActionDelete
		})).Return(nil).Once()
		mockRepo.On("Delete", ctx, articleID).Return(nil).Once()

		err := svc.Delete(ctx, admin, articleID, service.ClientInfo{})

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockNotifSvc.AssertExpectations(t)
	})

	t.Run("Author delete of own article stays silent", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		mockNotifSvc := new(mocks.NotificationService)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), mockNotifSvc, nil)

		mockRepo.On("GetByID", ctx, articleID).Return(article, nil).Once()
		mockRepo.On("Delete", ctx, articleID).Return(nil).Once()

		err := svc.Delete(ctx, author, articleID, service.ClientInfo{})

		assert.NoError(t, err)
		mockNotifSvc.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - unrelated user", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		mockRepo.On("GetByID", ctx, articleID).Return(article, nil).Once()

		stranger := &domain.User{ID: uuid.New(), Role: "client"}
		err := svc.Delete(ctx, stranger, articleID, service.ClientInfo{})

		assert.ErrorIs(t, err, service.ErrForbidden)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestArticleService_Get(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	articleID := uuid.New()

	t.Run("Public read bumps views", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		published := &domain.Article{ID: articleID, AuthorID: authorID, IsPublished: true, Views: 5}
		mockRepo.On("GetByID", ctx, articleID).Return(published, nil).Once()
		mockRepo.On("IncrementViews", ctx, articleID).Return(nil).Once()

		article, err := svc.Get(ctx, nil, articleID)

		assert.NoError(t, err)
		assert.Equal(t, int64(6), article.Views)
	})

	t.Run("Unpublished article hidden from anonymous viewers", func(t *testing.T) {
		mockRepo := new(mocks.ArticleRepository)
		svc := service.NewArticleService(mockRepo, new(mocks.AdminLogRepository), new(mocks.NotificationService), nil)

		draft := &domain.Article{ID: articleID, AuthorID: authorID}
		mockRepo.On("GetByID", ctx, articleID).Return(draft, nil).Once()

		article, err := svc.Get(ctx, nil, articleID)

		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, article)
		mockRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
	})
}
