package dto

import "github.com/spec-kit/helpdesk/internal/service"

// TicketActionForm is the POST /tickets payload. Title, Description and Status
// are nil when the field was absent from the form.
type TicketActionForm struct {
	Action      string
	TicketID    string
	Title       *string
	Description *string
	Status      *string
}

// ToAction converts the form into a service action.
func (f TicketActionForm) ToAction() service.TicketAction {
	return service.TicketAction{
		Action:   f.Action,
		TicketID: f.TicketID,
		Fields: service.TicketFields{
			Title:       f.Title,
			Description: f.Description,
			Status:      f.Status,
		},
	}
}
