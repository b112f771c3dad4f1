package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/repository"
	"github.com/formflowhq/formflow/internal/repository/mock"
	"github.com/formflowhq/formflow/pkg/fault"
)

func setupFlowMocks(t *testing.T) (*application.FlowService, *mock.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	repos := &repository.Repos{Form: mockForm}
	return application.NewFlowService(repos, application.NewFormService(repos)), mockForm
}

func branchedForm() form.Form {
	return draftForm(
		form.Question{ID: "q1", Title: "Q1", Type: form.TypeSelect, SubType: form.SubSingle, Options: []string{"a", "b"}, Logic: []form.LogicRule{
			{QuestionID: "q1", Condition: form.ConditionIs, Value: form.RuleValue{"a"}, SkipTo: "q3"},
		}},
		form.Question{ID: "q2", Title: "Q2", Type: form.TypeText, SubType: form.SubShort},
		form.Question{ID: "q3", Title: "Q3", Type: form.TypeText, SubType: form.SubShort},
	)
}

func TestFlowServiceGraph(t *testing.T) {
	svc, mockForm := setupFlowMocks(t)
	mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

	g, err := svc.Graph(1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 5 {
		t.Fatalf("expected start + 3 questions + end, got %d nodes", len(g.Nodes))
	}
	if _, ok := g.FindEdge("e-q1-q3-0"); !ok {
		t.Fatal("expected the rule edge from q1 to q3")
	}
}

func TestFlowServiceMoveNode(t *testing.T) {
	svc, mockForm := setupFlowMocks(t)

	t.Run("persists a new position", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		var saved *form.Form
		mockForm.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *form.Form) error {
			saved = f
			return nil
		})

		_, err := svc.MoveNode(1, 10, "q2", form.Position{X: 40, Y: 80})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q, _ := saved.Questions.Find("q2")
		if q.Position == nil || q.Position.X != 40 || q.Position.Y != 80 {
			t.Fatalf("position not persisted: %+v", q.Position)
		}
	})

	t.Run("unchanged position skips the write", func(t *testing.T) {
		f := branchedForm()
		pos := form.Position{X: 40, Y: 80}
		f.Questions[1].Position = &pos
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(f, nil)

		if _, err := svc.MoveNode(1, 10, "q2", pos); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown node", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		_, err := svc.MoveNode(1, 10, "ghost", form.Position{})
		if !fault.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestFlowServiceUpdateLogic(t *testing.T) {
	svc, mockForm := setupFlowMocks(t)

	t.Run("replaces the rule set", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		var saved *form.Form
		mockForm.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *form.Form) error {
			saved = f
			return nil
		})

		_, err := svc.UpdateLogic(1, 10, "q1", []form.LogicRuleDTO{
			{Condition: "is", Value: form.RuleValue{"b"}, SkipTo: "end"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q, _ := saved.Questions.Find("q1")
		if len(q.Logic) != 1 || q.Logic[0].SkipTo != "end" {
			t.Fatalf("rules not replaced: %+v", q.Logic)
		}
	})

	t.Run("rejects a destination that does not resolve", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		_, err := svc.UpdateLogic(1, 10, "q1", []form.LogicRuleDTO{
			{Condition: "is", Value: form.RuleValue{"a"}, SkipTo: "ghost"},
		})
		if !fault.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("rejects ambiguous routing", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		_, err := svc.UpdateLogic(1, 10, "q1", []form.LogicRuleDTO{
			{Condition: "is", Value: form.RuleValue{"a"}, SkipTo: "q2"},
			{Condition: "is", Value: form.RuleValue{"a"}, SkipTo: "q3"},
		})
		if !fault.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestFlowServiceInsertQuestionOnEdge(t *testing.T) {
	svc, mockForm := setupFlowMocks(t)

	t.Run("new form sentinel creates the form", func(t *testing.T) {
		var created *form.Form
		mockForm.EXPECT().Create(gomock.Any()).DoAndReturn(func(f *form.Form) error {
			created = f
			return nil
		})

		f, err := svc.InsertQuestionOnEdge(1, application.NewFormSentinel, form.InsertOnEdgeDTO{
			EdgeID:   "e-start-end",
			Question: form.QuestionDTO{Title: "First", Type: "text", SubType: "short"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created != f {
			t.Fatal("form not persisted")
		}
		if f.Name != "Untitled form" || len(f.Questions) != 1 {
			t.Fatalf("unexpected form: %+v", f)
		}
	})

	t.Run("start edge inserts at the front", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil).Times(2)

		var saved *form.Form
		mockForm.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *form.Form) error {
			saved = f
			return nil
		})

		_, err := svc.InsertQuestionOnEdge(1, "10", form.InsertOnEdgeDTO{
			EdgeID:   "e-start-q1",
			Question: form.QuestionDTO{Title: "Intro", Type: "text", SubType: "short"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Questions[0].Title != "Intro" {
			t.Fatalf("expected the new question first, got %q", saved.Questions[0].Title)
		}
	})

	t.Run("rule edge inserts after the source with logic", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil).Times(2)

		var saved *form.Form
		mockForm.EXPECT().Update(gomock.Any()).DoAndReturn(func(f *form.Form) error {
			saved = f
			return nil
		})

		_, err := svc.InsertQuestionOnEdge(1, "10", form.InsertOnEdgeDTO{
			EdgeID:      "e-q1-q3-0",
			Question:    form.QuestionDTO{Title: "Branch", Type: "text", SubType: "short"},
			SourceLogic: []form.LogicRuleDTO{{Condition: "is", Value: form.RuleValue{"b"}, SkipTo: "ignored"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		inserted := saved.Questions[1]
		if inserted.Title != "Branch" {
			t.Fatalf("expected the new question after q1, got %q", inserted.Title)
		}
		logic := saved.Questions[0].Logic
		if got := logic[len(logic)-1].SkipTo; got != inserted.ID {
			t.Fatalf("attached logic must route to the new question, routes to %q", got)
		}
	})

	t.Run("unknown edge", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		_, err := svc.InsertQuestionOnEdge(1, "10", form.InsertOnEdgeDTO{
			EdgeID:   "e-ghost",
			Question: form.QuestionDTO{Title: "x", Type: "text", SubType: "short"},
		})
		if !fault.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("invalid form reference", func(t *testing.T) {
		_, err := svc.InsertQuestionOnEdge(1, "not-a-number", form.InsertOnEdgeDTO{
			EdgeID:   "e-start-q1",
			Question: form.QuestionDTO{Title: "x", Type: "text", SubType: "short"},
		})
		if !fault.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestFlowServicePreview(t *testing.T) {
	svc, mockForm := setupFlowMocks(t)

	t.Run("matching rule routes to its destination", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		next, err := svc.Preview(1, 10, form.PreviewDTO{QuestionID: "q1", Answer: "a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != "q3" {
			t.Fatalf("expected q3, got %q", next)
		}
	})

	t.Run("non-matching answer falls through", func(t *testing.T) {
		mockForm.EXPECT().FindByIDForUser(uint(10), uint(1)).Return(branchedForm(), nil)

		next, err := svc.Preview(1, 10, form.PreviewDTO{QuestionID: "q1", Answer: "b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next != "q2" {
			t.Fatalf("expected the array successor q2, got %q", next)
		}
	})
}
