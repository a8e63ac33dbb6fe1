package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/service"
)

// View names understood by the template renderer.
const (
	ViewLanding   = "landing"
	ViewLogin     = "auth/login"
	ViewSignup    = "auth/signup"
	ViewDashboard = "dashboard"
	ViewTickets   = "tickets"
)

// PagesHandler serves the landing page and the dashboard.
type PagesHandler struct {
	tickets *service.TicketService
}

// NewPagesHandler constructs handler.
func NewPagesHandler(tickets *service.TicketService) *PagesHandler {
	return &PagesHandler{tickets: tickets}
}

// Landing GET /.
func (h *PagesHandler) Landing(c *fiber.Ctx) error {
	return c.Render(ViewLanding, fiber.Map{})
}

// Dashboard GET /dashboard. Requires a session.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.tickets.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render(ViewDashboard, fiber.Map{
		"user":        currentUser(c),
		"ticketStats": stats,
	})
}

func currentUser(c *fiber.Ctx) any {
	sess, ok := auth.SessionFromContext(c.UserContext())
	if !ok {
		return nil
	}
	return sess.Account
}
