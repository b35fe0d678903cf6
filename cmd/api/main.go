package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"soulsynergy/internal/config"
	"soulsynergy/internal/db"
	"soulsynergy/internal/handler"
	"soulsynergy/internal/middleware"
	"soulsynergy/internal/repository"
	"soulsynergy/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	database, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(database)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Provider callbacks are authenticated by payment id lookup, not JWT.
	app.Post("/api/payments/webhook", h.Payment.Webhook)

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)
	auth.Get("/verify-email", h.Auth.VerifyEmail)
	auth.Post("/resend-verification", h.Auth.ResendVerificationEmail)

	// Public catalog. OptionalAuth lets owners and admins see their own
	// unpublished content through the same endpoints.
	public := v1.Group("", middleware.OptionalAuth(authService))
	public.Get("/experts", h.User.ListExperts)
	public.Get("/experts/:id", h.User.GetExpert)
	public.Get("/experts/:id/products", h.Product.ListByExpert)
	public.Get("/articles", h.Article.ListPublished)
	public.Get("/articles/:id", h.Article.Get)
	public.Get("/events", h.Event.ListPublished)
	public.Get("/events/:id", h.Event.Get)
	public.Get("/cities", h.Event.ListCities)
	public.Get("/products/:id", h.Product.Get)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.Auth.Me)
	users.Put("/me", h.User.UpdateProfile)

	articles := protected.Group("/articles")
	articles.Post("/", middleware.RequireRole("expert"), h.Article.Create)
	articles.Get("/mine/list", middleware.RequireRole("expert"), h.Article.ListMine)
	articles.Post("/:id/publish", middleware.RequireRole("expert"), h.Article.Publish)
	articles.Post("/:id/archive", middleware.RequireRole("expert"), h.Article.Archive)
	articles.Post("/:id/unarchive", middleware.RequireRole("expert"), h.Article.Unarchive)
	articles.Post("/:id/like", h.Favorite.ToggleArticleLike)
	articles.Put("/:id", h.Article.Update)
	articles.Delete("/:id", h.Article.Delete)

	events := protected.Group("/events")
	events.Post("/", middleware.RequireRole("expert"), h.Event.Create)
	events.Get("/mine/list", middleware.RequireRole("expert"), h.Event.ListMine)
	events.Post("/:id/publish", middleware.RequireRole("expert"), h.Event.Publish)
	events.Post("/:id/archive", middleware.RequireRole("expert"), h.Event.Archive)
	events.Post("/:id/unarchive", middleware.RequireRole("expert"), h.Event.Unarchive)
	events.Put("/:id", h.Event.Update)
	events.Delete("/:id", h.Event.Delete)

	bookings := protected.Group("/bookings")
	bookings.Post("/", h.Booking.Create)
	bookings.Get("/", h.Booking.ListMine)
	bookings.Get("/expert", middleware.RequireRole("expert"), h.Booking.ListForExpert)
	bookings.Get("/:id", h.Booking.Get)
	bookings.Post("/:id/confirm", middleware.RequireRole("expert"), h.Booking.Confirm)
	bookings.Post("/:id/reject", middleware.RequireRole("expert"), h.Booking.Reject)
	bookings.Post("/:id/cancel", h.Booking.Cancel)

	favorites := protected.Group("/favorites")
	favorites.Post("/toggle", h.Favorite.Toggle)
	favorites.Post("/statuses", h.Favorite.Statuses)
	favorites.Get("/experts", h.Favorite.ListExperts)
	favorites.Get("/events", h.Favorite.ListEvents)
	favorites.Get("/articles", h.Favorite.ListArticles)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/:id", h.Notification.Delete)

	products := protected.Group("/products")
	products.Post("/", middleware.RequireRole("expert"), h.Product.Create)
	products.Put("/:id", middleware.RequireRole("expert"), h.Product.Update)
	products.Delete("/:id", middleware.RequireRole("expert"), h.Product.Delete)

	payments := protected.Group("/payments")
	payments.Post("/", h.Payment.Create)
	payments.Get("/", h.Payment.ListMine)

	media := protected.Group("/media")
	media.Post("/", h.Media.Upload)

	admin := protected.Group("/admin", middleware.RequireRole("admin"))
	admin.Get("/dashboard", h.Admin.Dashboard)
	admin.Get("/users", h.Admin.ListUsers)
	admin.Post("/users/:id/ban", h.Admin.BanUser)
	admin.Post("/users/:id/unban", h.Admin.UnbanUser)
	admin.Get("/articles/pending", h.Article.ListPending)
	admin.Post("/articles/:id/approve", h.Article.Approve)
	admin.Post("/articles/:id/reject", h.Article.Reject)
	admin.Get("/events/pending", h.Event.ListPending)
	admin.Post("/events/:id/approve", h.Event.Approve)
	admin.Post("/events/:id/reject", h.Event.Reject)
	admin.Get("/audit-logs", h.Admin.ListAuditLogs)
	admin.Get("/audit-logs/stats", h.Admin.AuditStats)
	admin.Get("/audit-logs/:entity_type/:id", h.Admin.ListEntityAuditLogs)
}
