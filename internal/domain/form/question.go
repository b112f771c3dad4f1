package form

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/formflowhq/formflow/pkg/fault"
)

type QuestionType string

const (
	TypeText   QuestionType = "text"
	TypeSelect QuestionType = "select"
)

type SubType string

// Text subtypes.
const (
	SubShort    SubType = "short"
	SubLong     SubType = "long"
	SubEmail    SubType = "email"
	SubNumber   SubType = "number"
	SubURL      SubType = "url"
	SubPhone    SubType = "phone"
	SubPassword SubType = "password"
	SubAddress  SubType = "address"
)

// Select subtypes.
const (
	SubSingle   SubType = "single"
	SubMultiple SubType = "multiple"
)

var textSubTypes = map[SubType]bool{
	SubShort: true, SubLong: true, SubEmail: true, SubNumber: true,
	SubURL: true, SubPhone: true, SubPassword: true, SubAddress: true,
}

var selectSubTypes = map[SubType]bool{
	SubSingle: true, SubMultiple: true,
}

type Condition string

const (
	ConditionAlways         Condition = "always"
	ConditionIs             Condition = "is"
	ConditionIsNot          Condition = "is_not"
	ConditionContains       Condition = "contains"
	ConditionDoesNotContain Condition = "does_not_contain"
	ConditionIsOneOf        Condition = "is_one_of"
	ConditionExpression     Condition = "expression"
)

var conditions = map[Condition]bool{
	ConditionAlways: true, ConditionIs: true, ConditionIsNot: true,
	ConditionContains: true, ConditionDoesNotContain: true,
	ConditionIsOneOf: true, ConditionExpression: true,
}

// SkipToEnd is the sentinel destination that terminates the form.
const SkipToEnd = "end"

// RuleValue is the match target of a logic rule. It is persisted as either a
// single JSON string or an array of strings, so both shapes unmarshal into
// the same slice.
type RuleValue []string

func (v *RuleValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*v = RuleValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("rule value must be a string or an array of strings")
	}
	*v = RuleValue(many)
	return nil
}

func (v RuleValue) MarshalJSON() ([]byte, error) {
	if len(v) == 1 {
		return json.Marshal(v[0])
	}
	return json.Marshal([]string(v))
}

// LogicRule is one conditional branch attached to a question.
type LogicRule struct {
	QuestionID string    `json:"questionId"`
	Condition  Condition `json:"condition"`
	Value      RuleValue `json:"value,omitempty"`
	SkipTo     string    `json:"skipTo"`
}

// Position is a 2D coordinate used only by the graph editor.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Question is one form field. Questions live inside the owning form's jsonb
// column rather than in their own table.
type Question struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Type        QuestionType `json:"type"`
	SubType     SubType      `json:"subType"`
	Options     []string     `json:"options,omitempty"`
	Position    *Position    `json:"position,omitempty"`
	Logic       []LogicRule  `json:"logic,omitempty"`
}

// Validate checks the question's shape at the API boundary.
func (q *Question) Validate() error {
	switch q.Type {
	case TypeText:
		if !textSubTypes[q.SubType] {
			return fault.Validation("subType %q is not a text subtype", q.SubType)
		}
	case TypeSelect:
		if !selectSubTypes[q.SubType] {
			return fault.Validation("subType %q is not a select subtype", q.SubType)
		}
		if len(q.Options) < 1 {
			return fault.Validation("select question requires at least one option")
		}
	default:
		return fault.Validation("unknown question type %q", q.Type)
	}
	for _, rule := range q.Logic {
		if err := ValidateRule(rule); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRule checks a single logic rule's shape.
func ValidateRule(rule LogicRule) error {
	if !conditions[rule.Condition] {
		return fault.Validation("unknown condition %q", rule.Condition)
	}
	if rule.SkipTo == "" {
		return fault.Validation("rule is missing a skipTo destination")
	}
	if rule.Condition != ConditionAlways && len(rule.Value) == 0 {
		return fault.Validation("condition %q requires a value", rule.Condition)
	}
	return nil
}

// QuestionList is the jsonb column holding a form's ordered questions.
type QuestionList []Question

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionList{}
	}
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value any) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into QuestionList", value)
	}
	return json.Unmarshal(data, l)
}

// IndexOf returns the array position of a question id, or -1.
func (l QuestionList) IndexOf(id string) int {
	for i, q := range l {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the question with the given id.
func (l QuestionList) Find(id string) (*Question, bool) {
	for i := range l {
		if l[i].ID == id {
			return &l[i], true
		}
	}
	return nil, false
}
