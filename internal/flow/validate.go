package flow

import (
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/pkg/fault"
)

// ValidateRules rejects a rule set where two rules with the same condition
// share a value but route to different destinations, which would make
// routing depend on authoring order in a way no editor surfaces.
func ValidateRules(rules []form.LogicRule) error {
	for _, rule := range rules {
		if err := form.ValidateRule(rule); err != nil {
			return err
		}
	}
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			a, b := rules[i], rules[j]
			if a.Condition != b.Condition || a.SkipTo == b.SkipTo {
				continue
			}
			if overlap := sharedValue(a.Value, b.Value); overlap != "" {
				return fault.Validation(
					"ambiguous routing: value %q with condition %q points at both %q and %q",
					overlap, a.Condition, a.SkipTo, b.SkipTo)
			}
		}
	}
	return nil
}

func sharedValue(a, b form.RuleValue) string {
	for _, v := range a {
		if containsValue(b, v) {
			return v
		}
	}
	return ""
}
