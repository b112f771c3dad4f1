package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/domain/response"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/internal/session"
	"github.com/formflowhq/formflow/pkg/fault"
)

// Step is what the respondent runtime returns after every transition: the
// next question to render, or the completed submission.
type Step struct {
	SessionID  string         `json:"session_id"`
	FormName   string         `json:"form_name"`
	Question   *form.Question `json:"question,omitempty"`
	Progress   float64        `json:"progress"`
	Done       bool           `json:"done"`
	ResponseID uint           `json:"response_id,omitempty"`
}

// RespondService is the linear respondent runtime. It walks the question
// array strictly in order; graph branching is an editor concern and is
// deliberately not honored here.
type RespondService struct {
	repos    *repository.Repos
	sessions session.Store
	broker   *ResponseBroker
}

func NewRespondService(repos *repository.Repos, sessions session.Store, broker *ResponseBroker) *RespondService {
	return &RespondService{repos: repos, sessions: sessions, broker: broker}
}

// Start records a view event, opens a session at the first question and
// returns it. Draft forms are invisible to respondents.
func (s *RespondService) Start(ctx context.Context, publicID string) (*Step, error) {
	f, err := s.repos.Form.FindByPublicID(publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("form not found")
		}
		return nil, err
	}
	if f.Status != form.StatusPublished {
		return nil, fault.NotFound("form not found")
	}

	view := &response.FormView{FormID: f.ID}
	if err := s.repos.Response.CreateView(view); err != nil {
		return nil, err
	}

	sess := session.Session{
		ID:         uuid.NewString(),
		FormID:     f.ID,
		FormViewID: view.ID,
		Idx:        0,
		Answers:    make(map[string]any),
		CreatedAt:  time.Now(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &Step{
		SessionID: sess.ID,
		FormName:  f.Name,
		Question:  &f.Questions[0],
		Progress:  progress(0, len(f.Questions)),
	}, nil
}

// Next validates the answer for the current question and advances. At the
// last question it submits instead of advancing: the whole answer map is
// validated against the document schema and persisted as a response.
func (s *RespondService) Next(ctx context.Context, sessionID string, answer any) (*Step, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fault.NotFound("session not found or expired")
		}
		return nil, err
	}

	f, err := s.repos.Form.FindByID(sess.FormID)
	if err != nil {
		return nil, err
	}
	if sess.Idx < 0 || sess.Idx >= len(f.Questions) {
		return nil, fault.NotFound("session is out of sync with the form")
	}
	q := &f.Questions[sess.Idx]

	if node := form.DeriveValidationSchema(q); node != nil {
		if err := node.ValidateValue(answer); err != nil {
			return nil, fault.Validation("%s: %v", q.Title, err)
		}
	}
	sess.Answers[q.ID] = answer

	if sess.Idx+1 < len(f.Questions) {
		sess.Idx++
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, err
		}
		return &Step{
			SessionID: sess.ID,
			FormName:  f.Name,
			Question:  &f.Questions[sess.Idx],
			Progress:  progress(sess.Idx, len(f.Questions)),
		}, nil
	}

	return s.submit(ctx, &f, sess)
}

func (s *RespondService) submit(ctx context.Context, f *form.Form, sess session.Session) (*Step, error) {
	doc, err := f.Document()
	if err != nil {
		return nil, fault.Internal("form schema is unreadable", err)
	}
	if err := doc.Validate(sess.Answers); err != nil {
		return nil, fault.Validation("%v", err)
	}

	resp := &response.Response{
		FormID:     f.ID,
		FormViewID: sess.FormViewID,
		Answers:    datatypes.JSONMap(sess.Answers),
	}
	if err := s.repos.Response.CreateResponse(resp); err != nil {
		return nil, err
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return nil, err
	}
	s.broker.Publish(f.ID, *resp)

	return &Step{
		SessionID:  sess.ID,
		FormName:   f.Name,
		Progress:   100,
		Done:       true,
		ResponseID: resp.ID,
	}, nil
}

func progress(idx, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(idx+1) * 100 / float64(total)
}
