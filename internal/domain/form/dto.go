package form

type QuestionDTO struct {
	ID          string         `json:"id"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Placeholder string         `json:"placeholder"`
	Type        string         `json:"type" binding:"required,oneof=text select"`
	SubType     string         `json:"subType" binding:"required"`
	Options     []string       `json:"options"`
	Position    *Position      `json:"position"`
	Logic       []LogicRuleDTO `json:"logic"`
}

type LogicRuleDTO struct {
	Condition string    `json:"condition" binding:"required"`
	Value     RuleValue `json:"value"`
	SkipTo    string    `json:"skipTo" binding:"required"`
}

// ToQuestion converts the payload to a model question. The server assigns an
// id later when the input carries none.
func (d QuestionDTO) ToQuestion() Question {
	q := Question{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Placeholder: d.Placeholder,
		Type:        QuestionType(d.Type),
		SubType:     SubType(d.SubType),
		Options:     d.Options,
		Position:    d.Position,
	}
	for _, r := range d.Logic {
		q.Logic = append(q.Logic, r.ToRule(d.ID))
	}
	return q
}

func (d LogicRuleDTO) ToRule(questionID string) LogicRule {
	return LogicRule{
		QuestionID: questionID,
		Condition:  Condition(d.Condition),
		Value:      d.Value,
		SkipTo:     d.SkipTo,
	}
}

func ToRules(questionID string, dtos []LogicRuleDTO) []LogicRule {
	rules := make([]LogicRule, 0, len(dtos))
	for _, d := range dtos {
		rules = append(rules, d.ToRule(questionID))
	}
	return rules
}

type CreateFormDTO struct {
	Name      string        `json:"name" binding:"required"`
	Questions []QuestionDTO `json:"questions"`
}

type UpdateFormDTO struct {
	Name      *string        `json:"name"`
	Questions *[]QuestionDTO `json:"questions"`
}

type AddQuestionDTO struct {
	Question    QuestionDTO    `json:"question" binding:"required"`
	TargetIdx   *int           `json:"targetIdx"`
	SourceLogic []LogicRuleDTO `json:"sourceLogic"`
}

type MoveNodeDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type UpdateLogicDTO struct {
	Rules []LogicRuleDTO `json:"rules" binding:"required"`
}

type InsertOnEdgeDTO struct {
	EdgeID      string         `json:"edgeId" binding:"required"`
	Question    QuestionDTO    `json:"question" binding:"required"`
	SourceLogic []LogicRuleDTO `json:"sourceLogic"`
}

type PreviewDTO struct {
	QuestionID string `json:"questionId" binding:"required"`
	Answer     any    `json:"answer"`
}
