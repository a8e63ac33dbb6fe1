package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Pages   *handlers.PagesHandler
	Auth    *handlers.AuthHandler
	Tickets *handlers.TicketsHandler
	Guard   *auth.Guard
}

// RegisterRoutes wires HTTP routes. Anything unmatched redirects to the
// landing page.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.Guard.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/", cfg.Pages.Landing)

	authGroup := app.Group("/auth")
	authGroup.Get("/login", cfg.Auth.LoginForm)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/signup", cfg.Auth.SignupForm)
	authGroup.Post("/signup", cfg.Auth.Signup)

	requireSession := cfg.Guard.RequireSession()
	app.Get("/dashboard", requireSession, cfg.Pages.Dashboard)
	app.Get("/tickets", requireSession, cfg.Tickets.ListTickets)
	app.Post("/tickets", requireSession, cfg.Tickets.TicketAction)

	app.Get("/logout", cfg.Auth.Logout)

	app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/")
	})
}
