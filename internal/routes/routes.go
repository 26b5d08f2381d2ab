package routes

import (
	"time"

	"github.com/basmahq/moderation-api/internal/config"
	"github.com/basmahq/moderation-api/internal/handlers"
	"github.com/basmahq/moderation-api/internal/middleware"
	"github.com/basmahq/moderation-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessions *services.SessionService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	lookupHandler *handlers.LookupHandler,
	accountHandler *handlers.AccountHandler,
	reportHandler *handlers.ReportHandler,
	userHandler *handlers.UserHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Login gets a stricter limit: 10 req/min per IP
	app.Post("/admin/login", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), authHandler.Login)

	// Everything else requires a valid token backed by a live session.
	authed := app.Group("", middleware.JWTProtected(cfg), middleware.SessionRequired(sessions))

	authed.Post("/admin/logout", authHandler.Logout)

	// Lookups
	authed.Get("/account-types", lookupHandler.AccountTypes)
	authed.Get("/report-types", lookupHandler.ReportTypes)
	authed.Get("/report-status", lookupHandler.ReportStatuses)
	authed.Get("/governments", lookupHandler.Governments)
	authed.Get("/districts", lookupHandler.Districts)
	authed.Get("/areas", lookupHandler.Areas)
	authed.Get("/account-options", lookupHandler.AccountOptions)

	admin := authed.Group("/admin")

	// Accounts
	admin.Get("/accounts", accountHandler.List)
	admin.Post("/accounts", accountHandler.Create)
	admin.Get("/accounts/:id", accountHandler.Get)
	admin.Put("/accounts/:id", accountHandler.Update)
	admin.Delete("/accounts/:id", accountHandler.Delete)

	// Reports
	admin.Get("/reports", reportHandler.List)
	admin.Get("/reports/:id", reportHandler.Get)
	admin.Put("/reports/:id", reportHandler.Update)
	admin.Delete("/reports/:id", reportHandler.Delete)
	admin.Post("/reports/:id/approve", reportHandler.Approve)

	// Console users
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users/:id", userHandler.Get)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
}
