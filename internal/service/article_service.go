package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"soulsynergy/internal/domain"
	"soulsynergy/internal/repository"
)

// ClientInfo carries the request origin for audit log rows.
type ClientInfo struct {
	IPAddress *string
	UserAgent *string
}

type ArticleService interface {
	Create(ctx context.Context, authorID uuid.UUID, input domain.CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Article, error)
	ListPublished(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error)
	ListMine(ctx context.Context, authorID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error)
	ListPending(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error)
	Publish(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Approve(ctx context.Context, admin *domain.User, id uuid.UUID, info ClientInfo) error
	Reject(ctx context.Context, admin *domain.User, id uuid.UUID, reason string, info ClientInfo) error
	Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Unarchive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
	Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateArticleInput, info ClientInfo) (*domain.Article, error)
	Delete(ctx context.Context, actor *domain.User, id uuid.UUID, info ClientInfo) error
}

type articleService struct {
	articleRepo  repository.ArticleRepository
	adminLogRepo repository.AdminLogRepository
	notifService NotificationService
	redis        *redis.Client
}

func NewArticleService(articleRepo repository.ArticleRepository, adminLogRepo repository.AdminLogRepository, notifService NotificationService, redis *redis.Client) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		adminLogRepo: adminLogRepo,
		notifService: notifService,
		redis:        redis,
	}
}

func (s *articleService) Create(ctx context.Context, authorID uuid.UUID, input domain.CreateArticleInput) (*domain.Article, error) {
	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrValidation
	}

	article := &domain.Article{
		ID:               uuid.New(),
		AuthorID:         authorID,
		Title:            input.Title,
		Content:          input.Content,
		CoverImage:       input.CoverImage,
		ModerationStatus: domain.ModerationDraft,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Get(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	public := article.IsPublished && !article.Archived
	if !public {
		if viewer == nil {
			return nil, ErrNotFound
		}
		if viewer.ID != article.AuthorID && !viewer.HasRole("admin") {
			return nil, ErrForbidden
		}
		return article, nil
	}

	// View counting only applies to publicly visible reads. The counter is
	// best effort; a failed bump never fails the read.
	if err := s.articleRepo.IncrementViews(ctx, id); err == nil {
		article.Views++
	}

	return article, nil
}

func (s *articleService) ListPublished(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error) {
	params.Validate()
	cacheKey := fmt.Sprintf("articles:published:page:%d:size:%d", params.Page, params.PageSize)

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp domain.PaginatedResponse[domain.Article]
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	articles, total, err := s.articleRepo.ListPublished(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Article]{}, err
	}

	resp := domain.NewPaginatedResponse(articles, params.Page, params.PageSize, total)

	if s.redis != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, 5*time.Minute).Err()
		}
	}

	return resp, nil
}

func (s *articleService) ListMine(ctx context.Context, authorID uuid.UUID, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error) {
	articles, total, err := s.articleRepo.ListByAuthor(ctx, authorID, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Article]{}, err
	}
	return domain.NewPaginatedResponse(articles, params.Page, params.PageSize, total), nil
}

func (s *articleService) ListPending(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.Article], error) {
	articles, total, err := s.articleRepo.ListPending(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Article]{}, err
	}
	return domain.NewPaginatedResponse(articles, params.Page, params.PageSize, total), nil
}

func (s *articleService) Publish(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	if article.AuthorID != actorID {
		return ErrForbidden
	}

	changed, err := s.articleRepo.SubmitForModeration(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	return nil
}

func (s *articleService) Approve(ctx context.Context, admin *domain.User, id uuid.UUID, info ClientInfo) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}

	changed, err := s.articleRepo.Approve(ctx, id)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, article.AuthorID, domain.NotifArticleApproved,
		"Статья опубликована",
		fmt.Sprintf("Ваша статья «%s» прошла модерацию и опубликована", article.Title),
		map[string]string{"article_id": id.String()})

	s.recordAdminAction(ctx, admin, domain.AuditActionApprove, id, article.Title, nil, info)
	s.invalidateListings(ctx)

	return nil
}

func (s *articleService) Reject(ctx context.Context, admin *domain.User, id uuid.UUID, reason string, info ClientInfo) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrValidation
	}

	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}

	changed, err := s.articleRepo.Reject(ctx, id, reason)
	if err != nil {
		return err
	}
	if !changed {
		return ErrInvalidState
	}

	s.notifService.Notify(ctx, article.AuthorID, domain.NotifArticleRejected,
		"Статья отклонена",
		fmt.Sprintf("Ваша статья «%s» не прошла модерацию: %s", article.Title, reason),
		map[string]string{"article_id": id.String()})

	s.recordAdminAction(ctx, admin, domain.AuditActionReject, id, article.Title,
		map[string]string{"reason": reason}, info)
	s.invalidateListings(ctx)

	return nil
}

func (s *articleService) Archive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, actorID, id, true)
}

func (s *articleService) Unarchive(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	return s.setArchived(ctx, actorID, id, false)
}

func (s *articleService) setArchived(ctx context.Context, actorID uuid.UUID, id uuid.UUID, archived bool) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}
	if article.AuthorID != actorID {
		return ErrForbidden
	}

	if err := s.articleRepo.SetArchived(ctx, id, archived); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *articleService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input domain.UpdateArticleInput, info ClientInfo) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	isOwner := article.AuthorID == actor.ID
	isAdmin := actor.HasRole("admin")
	if !isOwner && !isAdmin {
		return nil, ErrForbidden
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Content != nil {
		article.Content = *input.Content
	}
	if input.CoverImage != nil {
		article.CoverImage = *input.CoverImage
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}

	if isAdmin && !isOwner {
		s.notifService.Notify(ctx, article.AuthorID, domain.NotifArticleEdited,
			"Статья изменена модератором",
			fmt.Sprintf("Администратор внёс изменения в вашу статью «%s»", article.Title),
			map[string]string{"article_id": id.String()})

		s.recordAdminAction(ctx, actor, domain.AuditActionUpdate, id, article.Title, input, info)
	}

	s.invalidateListings(ctx)
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID, info ClientInfo) error {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrNotFound
	}

	isOwner := article.AuthorID == actor.ID
	isAdmin := actor.HasRole("admin")
	if !isOwner && !isAdmin {
		return ErrForbidden
	}

	// The owner is notified before the row disappears, so the notification
	// can still reference the title.
	if isAdmin && !isOwner {
		s.notifService.Notify(ctx, article.AuthorID, domain.NotifArticleDeleted,
			"Статья удалена модератором",
			fmt.Sprintf("Администратор удалил вашу статью «%s»", article.Title),
			nil)

		s.recordAdminAction(ctx, actor, domain.AuditActionDelete, id, article.Title, nil, info)
	}

	if err := s.articleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateListings(ctx)
	return nil
}

func (s *articleService) recordAdminAction(ctx context.Context, admin *domain.User, action string, entityID uuid.UUID, title string, details interface{}, info ClientInfo) {
	_ = repository.RecordAdminAction(s.adminLogRepo, ctx, domain.CreateAuditLogInput{
		AdminID:     admin.ID,
		ActionType:  action,
		EntityType:  "article",
		EntityID:    entityID,
		EntityTitle: &title,
		Details:     details,
		IPAddress:   info.IPAddress,
		UserAgent:   info.UserAgent,
	})
}

func (s *articleService) invalidateListings(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "articles:published:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}
