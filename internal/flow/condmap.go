package flow

import (
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/pkg/fault"
)

// ConditionEntry is one row of the branch editor: a single option routed to
// a single destination. Labels exist only for display and are never
// persisted.
type ConditionEntry struct {
	Label     string         `json:"label"`
	Option    string         `json:"option"`
	SkipTo    string         `json:"skipTo"`
	Condition form.Condition `json:"condition"`
}

// ConditionMap is the transient editor view of a question's rule set, in
// enumeration order.
type ConditionMap []ConditionEntry

// Label produces A..Z, then AA, AB and so on.
func Label(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}

// RulesToConditionMap expands a rule set into lettered entries. Multi-valued
// rules contribute one entry per value; the label counter runs across the
// whole rule set. A valued condition with an empty value set is a caller
// precondition violation and fails loudly.
func RulesToConditionMap(rules []form.LogicRule) (ConditionMap, error) {
	m := make(ConditionMap, 0, len(rules))
	counter := 0
	for _, rule := range rules {
		if rule.Condition != form.ConditionAlways && len(rule.Value) == 0 {
			return nil, fault.Validation("rule with condition %q has no value", rule.Condition)
		}
		if len(rule.Value) == 0 {
			m = append(m, ConditionEntry{
				Label:     Label(counter),
				SkipTo:    rule.SkipTo,
				Condition: rule.Condition,
			})
			counter++
			continue
		}
		for _, option := range rule.Value {
			m = append(m, ConditionEntry{
				Label:     Label(counter),
				Option:    option,
				SkipTo:    rule.SkipTo,
				Condition: rule.Condition,
			})
			counter++
		}
	}
	return m, nil
}

// ConditionMapToRules groups entries by (skipTo, condition) in first-seen
// order; grouped entries collapse into one rule whose value lists their
// options in entry order, duplicates dropped. Two independently authored
// rules sharing a (skipTo, condition) pair become one rule here; that
// compression is deliberate and stable under repeated conversion.
func ConditionMapToRules(questionID string, m ConditionMap) ([]form.LogicRule, error) {
	type groupKey struct {
		skipTo    string
		condition form.Condition
	}
	rules := make([]form.LogicRule, 0, len(m))
	index := make(map[groupKey]int)

	for _, entry := range m {
		if entry.SkipTo == "" {
			return nil, fault.Validation("condition entry %q is missing a destination", entry.Label)
		}
		if entry.Condition != form.ConditionAlways && entry.Option == "" {
			return nil, fault.Validation("condition entry %q is missing an option", entry.Label)
		}
		key := groupKey{skipTo: entry.SkipTo, condition: entry.Condition}
		i, seen := index[key]
		if !seen {
			rule := form.LogicRule{
				QuestionID: questionID,
				Condition:  entry.Condition,
				SkipTo:     entry.SkipTo,
			}
			if entry.Option != "" {
				rule.Value = form.RuleValue{entry.Option}
			}
			index[key] = len(rules)
			rules = append(rules, rule)
			continue
		}
		if entry.Option != "" && !containsValue(rules[i].Value, entry.Option) {
			rules[i].Value = append(rules[i].Value, entry.Option)
		}
	}
	return rules, nil
}

func containsValue(values form.RuleValue, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
