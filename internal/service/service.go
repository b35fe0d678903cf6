package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"soulsynergy/internal/config"
	"soulsynergy/internal/repository"
)

type Services struct {
	Auth         AuthService
	User         UserService
	Article      ArticleService
	Event        EventService
	Booking      BookingService
	Favorite     FavoriteService
	Notification NotificationService
	Audit        AuditService
	Product      ProductService
	Payment      PaymentService
	Media        MediaService
	Email        EmailService
	Dashboard    DashboardService
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := NewEmailService(cfg)
	notificationService := NewNotificationService(repos.Notification)

	return &Services{
		Auth:         NewAuthService(repos.User, repos.Session, emailService, cfg),
		User:         NewUserService(repos.User, repos.Session, repos.AdminLog, redis),
		Article:      NewArticleService(repos.Article, repos.AdminLog, notificationService, redis),
		Event:        NewEventService(repos.Event, repos.City, repos.AdminLog, notificationService, redis),
		Booking:      NewBookingService(repos.Booking, repos.User, notificationService, emailService),
		Favorite:     NewFavoriteService(repos.Favorite, repos.User, repos.Event, repos.Article),
		Notification: notificationService,
		Audit:        NewAuditService(repos.AdminLog),
		Product:      NewProductService(repos.Product, repos.User),
		Payment:      NewPaymentService(repos.Payment, repos.Product, notificationService, cfg),
		Media:        NewMediaService(minioClient, cfg),
		Email:        emailService,
		Dashboard:    NewDashboardService(repos.User, repos.Booking, repos.Article, repos.Event, redis),
	}
}
