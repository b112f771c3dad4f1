package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formflowhq/formflow/internal/domain/form"
)

func TestBuildGraphEmptyForm(t *testing.T) {
	g := BuildGraph(&form.Form{})

	require.Len(t, g.Nodes, 2)
	assert.Equal(t, StartNodeID, g.Nodes[0].ID)
	assert.Equal(t, EndNodeID, g.Nodes[1].ID)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, StartNodeID, g.Edges[0].Source)
	assert.Equal(t, EndNodeID, g.Edges[0].Target)
	assert.Equal(t, form.ConditionAlways, g.Edges[0].Condition)
}

func TestBuildGraphDefaultLayout(t *testing.T) {
	f := &form.Form{
		Questions: form.QuestionList{
			{ID: "q1", Type: form.TypeText, SubType: form.SubShort},
			{ID: "q2", Type: form.TypeText, SubType: form.SubShort},
		},
	}
	g := BuildGraph(f)

	require.Len(t, g.Nodes, 4)
	assert.Equal(t, form.Position{X: 0, Y: 100}, g.Nodes[0].Position, "start sits one spacing left of q1")
	assert.Equal(t, form.Position{X: Spacing, Y: 100}, g.Nodes[1].Position)
	assert.Equal(t, form.Position{X: 2 * Spacing, Y: 100}, g.Nodes[2].Position)
	assert.Equal(t, form.Position{X: 3 * Spacing, Y: 100}, g.Nodes[3].Position, "end sits one spacing right of q2")
}

func TestBuildGraphKeepsExplicitPositions(t *testing.T) {
	f := &form.Form{
		Questions: form.QuestionList{
			{ID: "q1", Type: form.TypeText, SubType: form.SubShort, Position: &form.Position{X: 40, Y: 80}},
		},
	}
	g := BuildGraph(f)

	assert.Equal(t, form.Position{X: 40, Y: 80}, g.Nodes[1].Position)
	assert.Equal(t, form.Position{X: 40 - Spacing, Y: 80}, g.Nodes[0].Position)
}

func TestBuildGraphEdgesFromRules(t *testing.T) {
	f := &form.Form{
		Questions: form.QuestionList{
			{ID: "q1", Type: form.TypeSelect, SubType: form.SubSingle, Options: []string{"a", "b"}, Logic: []form.LogicRule{
				{QuestionID: "q1", Condition: form.ConditionIs, Value: form.RuleValue{"a"}, SkipTo: "q2"},
				{QuestionID: "q1", Condition: form.ConditionIs, Value: form.RuleValue{"b"}, SkipTo: "end"},
			}},
			{ID: "q2", Type: form.TypeText, SubType: form.SubShort},
		},
	}
	g := BuildGraph(f)

	require.Len(t, g.Edges, 3)
	assert.Equal(t, "e-start-q1", g.Edges[0].ID)
	assert.Equal(t, "e-q1-q2-0", g.Edges[1].ID)
	assert.Equal(t, "e-q1-end-1", g.Edges[2].ID)
}

func TestBuildGraphDeterministic(t *testing.T) {
	f := &form.Form{
		Questions: form.QuestionList{
			{ID: "q1", Type: form.TypeText, SubType: form.SubShort, Logic: []form.LogicRule{
				{QuestionID: "q1", Condition: form.ConditionAlways, SkipTo: "end"},
			}},
			{ID: "q2", Type: form.TypeText, SubType: form.SubShort},
		},
	}

	first := BuildGraph(f)
	second := BuildGraph(f)
	assert.Equal(t, first, second)
}

func TestFindEdge(t *testing.T) {
	f := &form.Form{
		Questions: form.QuestionList{{ID: "q1", Type: form.TypeText, SubType: form.SubShort}},
	}
	g := BuildGraph(f)

	edge, ok := g.FindEdge("e-start-q1")
	require.True(t, ok)
	assert.Equal(t, StartNodeID, edge.Source)

	_, ok = g.FindEdge("missing")
	assert.False(t, ok)
}

func TestLabelSequence(t *testing.T) {
	assert.Equal(t, "A", Label(0))
	assert.Equal(t, "Z", Label(25))
	assert.Equal(t, "AA", Label(26))
	assert.Equal(t, "AB", Label(27))
	assert.Equal(t, "BA", Label(52))
}
