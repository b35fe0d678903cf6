package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Session      SessionRepository
	Article      ArticleRepository
	Event        EventRepository
	Booking      BookingRepository
	Favorite     FavoriteRepository
	Notification NotificationRepository
	AdminLog     AdminLogRepository
	Product      ProductRepository
	Payment      PaymentRepository
	City         CityRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Session:      NewSessionRepository(db),
		Article:      NewArticleRepository(db),
		Event:        NewEventRepository(db),
		Booking:      NewBookingRepository(db),
		Favorite:     NewFavoriteRepository(db),
		Notification: NewNotificationRepository(db),
		AdminLog:     NewAdminLogRepository(db),
		Product:      NewProductRepository(db),
		Payment:      NewPaymentRepository(db),
		City:         NewCityRepository(db),
	}
}
