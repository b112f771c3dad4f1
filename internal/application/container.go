package application

import (
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/internal/session"
)

type Services struct {
	User      *UserService
	Form      *FormService
	Flow      *FlowService
	Respond   *RespondService
	Analytics *AnalyticsService
	Broker    *ResponseBroker
}

func New(repos *repository.Repos, sessions session.Store) *Services {
	broker := NewResponseBroker()
	forms := NewFormService(repos)
	return &Services{
		User:      NewUserService(repos),
		Form:      forms,
		Flow:      NewFlowService(repos, forms),
		Respond:   NewRespondService(repos, sessions, broker),
		Analytics: NewAnalyticsService(repos, forms),
		Broker:    broker,
	}
}
