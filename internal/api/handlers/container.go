package handlers

import (
	"github.com/formflowhq/formflow/internal/application"
)

type Handlers struct {
	User    *UserHandler
	Form    *FormHandler
	Flow    *FlowHandler
	Respond *RespondHandler
	WS      *WSHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		User:    NewUserHandler(services.User),
		Form:    NewFormHandler(services.Form),
		Flow:    NewFlowHandler(services.Flow),
		Respond: NewRespondHandler(services.Respond, services.Analytics),
		WS:      NewWSHandler(services.Form, services.Broker),
	}
}
