package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/service"
)

// TicketsHandler serves the ticket list and the combined ticket action form.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// ListTickets GET /tickets. Requires a session.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render(ViewTickets, fiber.Map{
		"user":    currentUser(c),
		"tickets": tickets,
	})
}

// TicketAction POST /tickets. Applies create/update/delete and always
// redirects back to the list.
func (h *TicketsHandler) TicketAction(c *fiber.Ctx) error {
	form := dto.TicketActionForm{
		Action:      field(c, "action"),
		TicketID:    field(c, "ticket_id"),
		Title:       optionalField(c, "title"),
		Description: optionalField(c, "description"),
		Status:      optionalField(c, "status"),
	}
	if err := h.service.Apply(c.UserContext(), form.ToAction()); err != nil {
		return err
	}
	return c.Redirect("/tickets")
}
