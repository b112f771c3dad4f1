package application

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/flow"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/pkg/fault"
)

// FormService owns the builder-side lifecycle of a form: CRUD, question
// mutations, and the draft/published transitions. Every operation is scoped
// to the calling user.
type FormService struct {
	repos *repository.Repos
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{repos: repos}
}

func (s *FormService) CreateForm(userID uint, input form.CreateFormDTO) (*form.Form, error) {
	questions, err := prepareQuestions(input.Questions)
	if err != nil {
		return nil, err
	}
	f := &form.Form{
		PublicID:  uuid.NewString(),
		UserID:    userID,
		Name:      input.Name,
		Status:    form.StatusDraft,
		Questions: questions,
	}
	if err := f.BuildSchema(); err != nil {
		return nil, fault.Internal("failed to derive form schema", err)
	}
	return f, s.repos.Form.Create(f)
}

func (s *FormService) GetForm(userID, id uint) (*form.Form, error) {
	return s.find(s.repos, userID, id)
}

func (s *FormService) ListForms(userID uint) ([]form.Form, error) {
	return s.repos.Form.ListByUser(userID)
}

func (s *FormService) UpdateForm(userID, id uint, input form.UpdateFormDTO) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, id)
		if err != nil {
			return err
		}
		if input.Name != nil {
			f.Name = *input.Name
		}
		if input.Questions != nil {
			if err := s.requireDraft(f); err != nil {
				return err
			}
			questions, err := prepareQuestions(*input.Questions)
			if err != nil {
				return err
			}
			f.Questions = questions
			if err := f.BuildSchema(); err != nil {
				return fault.Internal("failed to derive form schema", err)
			}
		}
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

func (s *FormService) DeleteForm(userID, id uint) error {
	return s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, id)
		if err != nil {
			return err
		}
		return tx.Form.Delete(f.ID)
	})
}

// AddQuestion appends a question, or inserts it after targetIdx when given.
// Supplied source logic is attached to the question at targetIdx and keyed
// to route specifically to the new question.
func (s *FormService) AddQuestion(userID, formID uint, input form.AddQuestionDTO) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, formID)
		if err != nil {
			return err
		}
		if err := s.requireDraft(f); err != nil {
			return err
		}
		q := input.Question.ToQuestion()
		if err := assignID(&q); err != nil {
			return err
		}

		// TargetIdx is the index of the question to insert after; -1 inserts
		// at the front (used when dropping onto the start edge).
		insertAt := len(f.Questions)
		if input.TargetIdx != nil {
			idx := *input.TargetIdx
			if idx < -1 || idx >= len(f.Questions) {
				return fault.Validation("targetIdx %d is out of range", idx)
			}
			insertAt = idx + 1
			if idx >= 0 && len(input.SourceLogic) > 0 {
				source := &f.Questions[idx]
				for _, dto := range input.SourceLogic {
					rule := dto.ToRule(source.ID)
					rule.SkipTo = q.ID
					if err := form.ValidateRule(rule); err != nil {
						return err
					}
					source.Logic = append(source.Logic, rule)
				}
			}
		}

		f.Questions = append(f.Questions[:insertAt], append(form.QuestionList{q}, f.Questions[insertAt:]...)...)
		if err := f.BuildSchema(); err != nil {
			return fault.Internal("failed to derive form schema", err)
		}
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

func (s *FormService) EditQuestion(userID, formID uint, input form.QuestionDTO) (*form.Form, error) {
	if input.ID == "" {
		return nil, fault.Validation("question id is required")
	}
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, formID)
		if err != nil {
			return err
		}
		if err := s.requireDraft(f); err != nil {
			return err
		}
		idx := f.Questions.IndexOf(input.ID)
		if idx < 0 {
			return fault.NotFound("question %s not found", input.ID)
		}
		q := input.ToQuestion()
		if err := q.Validate(); err != nil {
			return err
		}
		f.Questions[idx] = q
		if err := f.BuildSchema(); err != nil {
			return fault.Internal("failed to derive form schema", err)
		}
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

// DeleteQuestion removes a question and retargets every rule that skipped to
// it onto the end sentinel, so deletion never leaves dangling destinations.
func (s *FormService) DeleteQuestion(userID, formID uint, questionID string) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, formID)
		if err != nil {
			return err
		}
		if err := s.requireDraft(f); err != nil {
			return err
		}
		idx := f.Questions.IndexOf(questionID)
		if idx < 0 {
			return fault.NotFound("question %s not found", questionID)
		}
		f.Questions = append(f.Questions[:idx], f.Questions[idx+1:]...)
		for i := range f.Questions {
			for j := range f.Questions[i].Logic {
				if f.Questions[i].Logic[j].SkipTo == questionID {
					f.Questions[i].Logic[j].SkipTo = flow.EndSentinel
				}
			}
		}
		if err := f.BuildSchema(); err != nil {
			return fault.Internal("failed to derive form schema", err)
		}
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

func (s *FormService) Publish(userID, id uint) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, id)
		if err != nil {
			return err
		}
		if len(f.Questions) == 0 {
			return fault.Validation("cannot publish a form with no questions")
		}
		f.Status = form.StatusPublished
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

func (s *FormService) Unpublish(userID, id uint) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.find(tx, userID, id)
		if err != nil {
			return err
		}
		f.Status = form.StatusDraft
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

func (s *FormService) find(repos *repository.Repos, userID, id uint) (*form.Form, error) {
	f, err := repos.Form.FindByIDForUser(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("form %d not found", id)
		}
		return nil, err
	}
	return &f, nil
}

func (s *FormService) requireDraft(f *form.Form) error {
	if f.Status == form.StatusPublished {
		return fault.Conflict("form %d is published; unpublish it before editing its structure", f.ID)
	}
	return nil
}

// prepareQuestions validates incoming questions and assigns server-side ids
// to any that lack one.
func prepareQuestions(dtos []form.QuestionDTO) (form.QuestionList, error) {
	questions := make(form.QuestionList, 0, len(dtos))
	for _, dto := range dtos {
		q := dto.ToQuestion()
		if err := assignID(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func assignID(q *form.Question) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
		for i := range q.Logic {
			q.Logic[i].QuestionID = q.ID
		}
	}
	return q.Validate()
}
