package application

import (
	"strconv"

	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/flow"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/pkg/fault"
)

// NewFormSentinel is the form reference the graph editor sends when a
// question is dropped onto an edge before the form exists.
const NewFormSentinel = "new"

// FlowService backs the graph editor: it serves the derived graph and
// persists node and edge edits onto the owning form.
type FlowService struct {
	repos     *repository.Repos
	forms     *FormService
	evaluator *flow.Evaluator
}

func NewFlowService(repos *repository.Repos, forms *FormService) *FlowService {
	return &FlowService{repos: repos, forms: forms, evaluator: flow.NewEvaluator()}
}

func (s *FlowService) Graph(userID, formID uint) (flow.Graph, error) {
	f, err := s.forms.GetForm(userID, formID)
	if err != nil {
		return flow.Graph{}, err
	}
	return flow.BuildGraph(f), nil
}

// MoveNode persists a node position. An unchanged position is a no-op and
// skips the write entirely, so drag frames do not hammer the database.
func (s *FlowService) MoveNode(userID, formID uint, nodeID string, pos form.Position) (*form.Form, error) {
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.forms.find(tx, userID, formID)
		if err != nil {
			return err
		}
		q, ok := f.Questions.Find(nodeID)
		if !ok {
			return fault.NotFound("node %s not found", nodeID)
		}
		if q.Position != nil && *q.Position == pos {
			updated = f
			return nil
		}
		q.Position = &pos
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

// InsertQuestionOnEdge inserts a new question after the edge's source node.
// When formRef is the "new" sentinel the form does not exist yet and is
// created with this as its only question.
func (s *FlowService) InsertQuestionOnEdge(userID uint, formRef string, input form.InsertOnEdgeDTO) (*form.Form, error) {
	if formRef == NewFormSentinel {
		return s.forms.CreateForm(userID, form.CreateFormDTO{
			Name:      "Untitled form",
			Questions: []form.QuestionDTO{input.Question},
		})
	}

	formID, err := strconv.ParseUint(formRef, 10, 32)
	if err != nil {
		return nil, fault.Validation("invalid form reference %q", formRef)
	}

	f, err := s.forms.GetForm(userID, uint(formID))
	if err != nil {
		return nil, err
	}
	edge, ok := flow.BuildGraph(f).FindEdge(input.EdgeID)
	if !ok {
		return nil, fault.NotFound("edge %s not found", input.EdgeID)
	}

	add := form.AddQuestionDTO{Question: input.Question}
	if edge.Source == flow.StartNodeID {
		front := -1
		add.TargetIdx = &front
	} else {
		idx := f.Questions.IndexOf(edge.Source)
		if idx < 0 {
			return nil, fault.NotFound("edge source %s not found", edge.Source)
		}
		add.TargetIdx = &idx
		add.SourceLogic = input.SourceLogic
	}
	return s.forms.AddQuestion(userID, uint(formID), add)
}

// UpdateLogic replaces a question's rule set after validating rule shape,
// routing ambiguity, and that every destination resolves.
func (s *FlowService) UpdateLogic(userID, formID uint, questionID string, dtos []form.LogicRuleDTO) (*form.Form, error) {
	rules := form.ToRules(questionID, dtos)
	var updated *form.Form
	err := s.repos.ExecTx(func(tx *repository.Repos) error {
		f, err := s.forms.find(tx, userID, formID)
		if err != nil {
			return err
		}
		if err := s.forms.requireDraft(f); err != nil {
			return err
		}
		q, ok := f.Questions.Find(questionID)
		if !ok {
			return fault.NotFound("question %s not found", questionID)
		}
		if err := flow.ValidateRules(rules); err != nil {
			return err
		}
		for _, rule := range rules {
			if rule.SkipTo == flow.EndSentinel {
				continue
			}
			if _, ok := f.Questions.Find(rule.SkipTo); !ok {
				return fault.NotFound("rule destination %s not found", rule.SkipTo)
			}
		}
		q.Logic = rules
		updated = f
		return tx.Form.Update(f)
	})
	return updated, err
}

// ConditionMap returns the lettered editor view of a question's rules.
func (s *FlowService) ConditionMap(userID, formID uint, questionID string) (flow.ConditionMap, error) {
	f, err := s.forms.GetForm(userID, formID)
	if err != nil {
		return nil, err
	}
	q, ok := f.Questions.Find(questionID)
	if !ok {
		return nil, fault.NotFound("question %s not found", questionID)
	}
	return flow.RulesToConditionMap(q.Logic)
}

// SaveConditionMap converts the editor view back to rules and persists them.
func (s *FlowService) SaveConditionMap(userID, formID uint, questionID string, m flow.ConditionMap) (*form.Form, error) {
	rules, err := flow.ConditionMapToRules(questionID, m)
	if err != nil {
		return nil, err
	}
	dtos := make([]form.LogicRuleDTO, 0, len(rules))
	for _, r := range rules {
		dtos = append(dtos, form.LogicRuleDTO{Condition: string(r.Condition), Value: r.Value, SkipTo: r.SkipTo})
	}
	return s.UpdateLogic(userID, formID, questionID, dtos)
}

// Preview runs the evaluator against a hypothetical answer so a builder can
// test branching without publishing.
func (s *FlowService) Preview(userID, formID uint, input form.PreviewDTO) (string, error) {
	f, err := s.forms.GetForm(userID, formID)
	if err != nil {
		return "", err
	}
	if _, ok := f.Questions.Find(input.QuestionID); !ok {
		return "", fault.NotFound("question %s not found", input.QuestionID)
	}
	return s.evaluator.Next(f, input.QuestionID, input.Answer, map[string]any{input.QuestionID: input.Answer}), nil
}
