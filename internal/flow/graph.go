// Package flow derives the directed-graph view of a form (nodes are
// questions plus synthetic start and end, edges are logic rules), evaluates
// logic rules against respondent answers, and converts rule sets to and from
// the condition-map shape the branch editor works with.
package flow

import (
	"fmt"

	"github.com/formflowhq/formflow/internal/domain/form"
)

type NodeType string

const (
	NodeStart    NodeType = "start"
	NodeEnd      NodeType = "end"
	NodeQuestion NodeType = "question"
)

const (
	StartNodeID = "start"
	EndNodeID   = "end"
)

// EndSentinel terminates evaluation; it doubles as the end node id.
const EndSentinel = form.SkipToEnd

// Spacing is the horizontal distance of the default grid layout.
const Spacing = 250.0

type Node struct {
	ID       string         `json:"id"`
	Type     NodeType       `json:"type"`
	Position form.Position  `json:"position"`
	Question *form.Question `json:"question,omitempty"`
}

type Edge struct {
	ID        string         `json:"id"`
	Source    string         `json:"source"`
	Target    string         `json:"target"`
	Condition form.Condition `json:"condition"`
	Value     form.RuleValue `json:"value,omitempty"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// DefaultPosition is the grid slot for a question that has never been placed
// by hand. Index 0 lands one spacing right of the start node.
func DefaultPosition(idx int) form.Position {
	return form.Position{X: float64(idx+1) * Spacing, Y: 100}
}

func questionPosition(q *form.Question, idx int) form.Position {
	if q.Position != nil {
		return *q.Position
	}
	return DefaultPosition(idx)
}

// BuildGraph derives the graph from the form's question array. It is a pure
// function: two calls over the same questions yield identical nodes, edge
// ids and positions.
func BuildGraph(f *form.Form) Graph {
	questions := f.Questions
	g := Graph{
		Nodes: make([]Node, 0, len(questions)+2),
		Edges: make([]Edge, 0, len(questions)+1),
	}

	start := Node{ID: StartNodeID, Type: NodeStart}
	end := Node{ID: EndNodeID, Type: NodeEnd}
	if len(questions) == 0 {
		start.Position = form.Position{X: 0, Y: 0}
		end.Position = form.Position{X: Spacing, Y: 0}
	} else {
		first := questionPosition(&questions[0], 0)
		last := questionPosition(&questions[len(questions)-1], len(questions)-1)
		start.Position = form.Position{X: first.X - Spacing, Y: first.Y}
		end.Position = form.Position{X: last.X + Spacing, Y: last.Y}
	}
	g.Nodes = append(g.Nodes, start)

	for i := range questions {
		q := &questions[i]
		g.Nodes = append(g.Nodes, Node{
			ID:       q.ID,
			Type:     NodeQuestion,
			Position: questionPosition(q, i),
			Question: q,
		})
	}
	g.Nodes = append(g.Nodes, end)

	if len(questions) == 0 {
		g.Edges = append(g.Edges, syntheticEdge(StartNodeID, EndNodeID))
	} else {
		g.Edges = append(g.Edges, syntheticEdge(StartNodeID, questions[0].ID))
	}

	for i := range questions {
		q := &questions[i]
		for ruleIdx, rule := range q.Logic {
			g.Edges = append(g.Edges, Edge{
				ID:        fmt.Sprintf("e-%s-%s-%d", q.ID, rule.SkipTo, ruleIdx),
				Source:    q.ID,
				Target:    rule.SkipTo,
				Condition: rule.Condition,
				Value:     rule.Value,
			})
		}
	}
	return g
}

func syntheticEdge(source, target string) Edge {
	return Edge{
		ID:        fmt.Sprintf("e-%s-%s", source, target),
		Source:    source,
		Target:    target,
		Condition: form.ConditionAlways,
	}
}

// FindEdge resolves an edge id within the graph.
func (g Graph) FindEdge(id string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.ID == id {
			return e, true
		}
	}
	return Edge{}, false
}
