package flow

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/formflowhq/formflow/internal/domain/form"
)

// Evaluator decides which question follows an answered one. It never fails
// on the respondent path: unresolvable routing degrades to EndSentinel and
// broken expression rules count as non-matches.
type Evaluator struct {
	mu    sync.RWMutex
	cache map[string]*vm.Program
}

func NewEvaluator() *Evaluator {
	return &Evaluator{cache: make(map[string]*vm.Program)}
}

// Next evaluates the current question's rules in authoring order; the first
// matching rule wins. With no match the successor in array order is next,
// and past the last question the form ends. A rule whose skipTo does not
// resolve to a question also ends the form; the caller surfaces the warning.
func (e *Evaluator) Next(f *form.Form, currentID string, answer any, answers map[string]any) string {
	idx := f.Questions.IndexOf(currentID)
	if idx < 0 {
		return EndSentinel
	}
	current := &f.Questions[idx]

	for _, rule := range current.Logic {
		if !e.matches(rule, answer, answers) {
			continue
		}
		if rule.SkipTo == EndSentinel {
			return EndSentinel
		}
		if _, ok := f.Questions.Find(rule.SkipTo); !ok {
			log.Printf("form %s: rule on question %s skips to unknown question %s", f.PublicID, currentID, rule.SkipTo)
			return EndSentinel
		}
		return rule.SkipTo
	}

	if idx+1 < len(f.Questions) {
		return f.Questions[idx+1].ID
	}
	return EndSentinel
}

func (e *Evaluator) matches(rule form.LogicRule, answer any, answers map[string]any) bool {
	switch rule.Condition {
	case form.ConditionAlways:
		return true
	case form.ConditionIs:
		return scalar(answer) == ruleScalar(rule)
	case form.ConditionIsNot:
		return scalar(answer) != ruleScalar(rule)
	case form.ConditionContains:
		return strings.Contains(scalar(answer), ruleScalar(rule))
	case form.ConditionDoesNotContain:
		return !strings.Contains(scalar(answer), ruleScalar(rule))
	case form.ConditionIsOneOf:
		for _, candidate := range answerValues(answer) {
			for _, want := range rule.Value {
				if candidate == want {
					return true
				}
			}
		}
		return false
	case form.ConditionExpression:
		return e.evalExpression(ruleScalar(rule), answer, answers)
	default:
		return false
	}
}

// evalExpression runs an expr-lang boolean expression with the current
// answer and the accumulated answer map in scope. Compiled programs are
// cached per expression text.
func (e *Evaluator) evalExpression(expression string, answer any, answers map[string]any) bool {
	if expression == "" {
		return false
	}
	env := map[string]any{
		"answer":  answer,
		"answers": answers,
	}

	e.mu.RLock()
	program, ok := e.cache[expression]
	e.mu.RUnlock()

	if !ok {
		e.mu.Lock()
		if program, ok = e.cache[expression]; !ok {
			var err error
			program, err = expr.Compile(expression, expr.Env(env), expr.AsBool())
			if err != nil {
				e.mu.Unlock()
				log.Printf("logic expression %q failed to compile: %v", expression, err)
				return false
			}
			e.cache[expression] = program
		}
		e.mu.Unlock()
	}

	out, err := expr.Run(program, env)
	if err != nil {
		log.Printf("logic expression %q failed: %v", expression, err)
		return false
	}
	result, ok := out.(bool)
	return ok && result
}

// scalar coerces an answer to its string form. Multi-valued answers join
// with commas, matching how the editor displays them.
func scalar(answer any) string {
	values := answerValues(answer)
	return strings.Join(values, ",")
}

func ruleScalar(rule form.LogicRule) string {
	return strings.Join(rule.Value, ",")
}

func answerValues(answer any) []string {
	switch v := answer.(type) {
	case nil:
		return nil
	case string:
		return []string{v}
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, answerValues(item)...)
		}
		return out
	case float64:
		return []string{strconv.FormatFloat(v, 'f', -1, 64)}
	case int:
		return []string{strconv.Itoa(v)}
	case bool:
		return []string{strconv.FormatBool(v)}
	default:
		return []string{fmt.Sprint(v)}
	}
}
