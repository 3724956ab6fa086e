package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"foundit-fast/internal/config"
	"foundit-fast/internal/handler"
	"foundit-fast/internal/middleware"
	"foundit-fast/internal/repository"
	"foundit-fast/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	repos := repository.NewRepositories()
	if cfg.SeedDemoData {
		if err := repository.Seed(context.Background(), repos); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data loaded")
	}

	services := service.NewServices(repos, cfg)
	handlers := handler.NewHandlers(services, cfg)

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

	setupRoutes(app, handlers, services)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, services *service.Services) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.RefreshToken)
	auth.Post("/logout", h.Auth.Logout)
	auth.Post("/forgot-password", h.Auth.ForgotPassword)
	auth.Post("/reset-password", h.Auth.ResetPassword)

	protected := v1.Group("", middleware.AuthRequired(services.Auth))

	users := protected.Group("/users")
	users.Get("/me", h.User.Me)
	users.Put("/me", h.User.UpdateProfile)
	users.Post("/me/change-password", h.User.ChangePassword)
	users.Get("/", middleware.RequireAdmin(), h.User.List)
	users.Patch("/:id/toggle-status", middleware.RequireAdmin(), h.User.ToggleStatus)
	users.Post("/:id/unblock", middleware.RequireAdmin(), h.User.Unblock)
	users.Delete("/:id", middleware.RequireAdmin(), h.User.Delete)

	posts := protected.Group("/posts")
	posts.Post("/", h.Post.Create)
	posts.Get("/", h.Post.Browse)
	posts.Get("/search", h.Post.Search)
	posts.Get("/mine", h.Post.Mine)
	posts.Get("/all", middleware.RequireAdmin(), h.Post.List)
	posts.Get("/:id", h.Post.GetByID)
	posts.Put("/:id", h.Post.Update)
	posts.Delete("/:id", h.Post.Delete)

	matches := protected.Group("/matches")
	matches.Get("/", h.Match.Mine)
	matches.Get("/:id", h.Match.GetByID)
	matches.Post("/:id/resolve", h.Match.Resolve)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/pending", h.Notification.Pending)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)
	notifications.Post("/mark-all-read", h.Notification.MarkAllAsRead)
	notifications.Delete("/:id", h.Notification.Delete)

	messages := protected.Group("/messages")
	messages.Post("/", h.Message.Send)
	messages.Post("/contact-owner", h.Message.ContactOwner)
	messages.Get("/inbox", h.Message.Inbox)
	messages.Get("/sent", h.Message.Sent)
	messages.Get("/unread-count", h.Message.UnreadCount)
	messages.Patch("/:id/read", h.Message.MarkRead)
	messages.Patch("/:id/toggle-read", h.Message.ToggleRead)
	messages.Delete("/:id", h.Message.Delete)

	categories := protected.Group("/categories")
	categories.Get("/", h.Category.List)
	categories.Post("/", middleware.RequireAdmin(), h.Category.Create)
	categories.Delete("/:id", middleware.RequireAdmin(), h.Category.Delete)

	reports := protected.Group("/reports")
	reports.Post("/items", h.Report.ReportItem)
	reports.Post("/users", h.Report.ReportUser)
	reports.Get("/items", middleware.RequireAdmin(), h.Report.ListItemReports)
	reports.Get("/users", middleware.RequireAdmin(), h.Report.ListUserReports)

	admin := protected.Group("/admin", middleware.RequireAdmin())
	admin.Get("/dashboard", h.Dashboard.Stats)
	admin.Get("/audit/recent", h.Audit.Recent)
}
