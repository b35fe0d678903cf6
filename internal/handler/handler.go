package handler

import "soulsynergy/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Article      *ArticleHandler
	Event        *EventHandler
	Booking      *BookingHandler
	Favorite     *FavoriteHandler
	Notification *NotificationHandler
	Admin        *AdminHandler
	Product      *ProductHandler
	Payment      *PaymentHandler
	Media        *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Article:      NewArticleHandler(services.Article),
		Event:        NewEventHandler(services.Event),
		Booking:      NewBookingHandler(services.Booking),
		Favorite:     NewFavoriteHandler(services.Favorite),
		Notification: NewNotificationHandler(services.Notification),
		Admin:        NewAdminHandler(services.User, services.Audit, services.Dashboard),
		Product:      NewProductHandler(services.Product),
		Payment:      NewPaymentHandler(services.Payment),
		Media:        NewMediaHandler(services.Media),
	}
}
