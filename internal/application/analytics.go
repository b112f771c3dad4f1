package application

import (
	"time"

	"github.com/formflowhq/formflow/internal/domain/response"
	"github.com/formflowhq/formflow/internal/repository"
)

const analyticsWindow = 7 * 24 * time.Hour

// AnalyticsService compares the trailing 7-day window against the 7 days
// before it for views and responses.
type AnalyticsService struct {
	repos *repository.Repos
	forms *FormService
	now   func() time.Time
}

func NewAnalyticsService(repos *repository.Repos, forms *FormService) *AnalyticsService {
	return &AnalyticsService{repos: repos, forms: forms, now: time.Now}
}

// Responses lists a form's submissions for the owner's dashboard, newest
// first.
func (s *AnalyticsService) Responses(userID, formID uint) ([]response.Response, error) {
	f, err := s.forms.GetForm(userID, formID)
	if err != nil {
		return nil, err
	}
	return s.repos.Response.ListByForm(f.ID)
}

func (s *AnalyticsService) Overview(userID, formID uint) (*response.AnalyticsDTO, error) {
	f, err := s.forms.GetForm(userID, formID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	windowStart := now.Add(-analyticsWindow)
	prevStart := now.Add(-2 * analyticsWindow)

	views, err := s.repos.Response.CountViews(f.ID, windowStart, now)
	if err != nil {
		return nil, err
	}
	prevViews, err := s.repos.Response.CountViews(f.ID, prevStart, windowStart)
	if err != nil {
		return nil, err
	}
	responses, err := s.repos.Response.CountResponses(f.ID, windowStart, now)
	if err != nil {
		return nil, err
	}
	prevResponses, err := s.repos.Response.CountResponses(f.ID, prevStart, windowStart)
	if err != nil {
		return nil, err
	}

	return &response.AnalyticsDTO{
		Views:          views,
		PrevViews:      prevViews,
		ViewsDelta:     delta(views, prevViews),
		Responses:      responses,
		PrevResponses:  prevResponses,
		ResponsesDelta: delta(responses, prevResponses),
	}, nil
}

// delta is the percentage change against the previous window; nil when the
// previous window is empty, since there is nothing to compare against.
func delta(current, previous int64) *float64 {
	if previous == 0 {
		return nil
	}
	d := float64(current-previous) / float64(previous) * 100
	return &d
}
