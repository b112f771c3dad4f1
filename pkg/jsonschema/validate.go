package jsonschema

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks a full answer map against the document schema. Every
// required property must be present and valid; unknown keys are rejected so
// a stale client cannot smuggle answers for deleted questions.
func (d *Document) Validate(answers map[string]any) error {
	for _, key := range d.Required {
		if _, ok := answers[key]; !ok {
			return fmt.Errorf("%s: missing required answer", key)
		}
	}
	for key, value := range answers {
		node, ok := d.Properties[key]
		if !ok {
			return fmt.Errorf("%s: unknown property", key)
		}
		if err := node.ValidateValue(value); err != nil {
			return fmt.Errorf("%s: %v", key, err)
		}
	}
	return nil
}

// ValidateValue checks a single value against a schema node.
func (n *Node) ValidateValue(value any) error {
	switch n.Type {
	case "string":
		return n.validateString(value)
	case "number":
		return validateNumber(value)
	case "array":
		return n.validateArray(value)
	default:
		return fmt.Errorf("unsupported schema type %q", n.Type)
	}
}

func (n *Node) validateString(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if n.MinLength != nil && len(s) < *n.MinLength {
		return fmt.Errorf("shorter than %d characters", *n.MinLength)
	}
	if n.MaxLength != nil && len(s) > *n.MaxLength {
		return fmt.Errorf("longer than %d characters", *n.MaxLength)
	}
	switch n.Format {
	case "email":
		if !emailRe.MatchString(s) {
			return fmt.Errorf("not a valid email address")
		}
	case "uri":
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("not a valid URL")
		}
	}
	if n.Pattern != "" {
		re, err := regexp.Compile(n.Pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q", n.Pattern)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("does not match required pattern")
		}
	}
	for _, sub := range n.AllOf {
		if err := sub.validateString(value); err != nil {
			return err
		}
	}
	if len(n.Enum) > 0 && !contains(n.Enum, s) {
		return fmt.Errorf("%q is not an allowed value", s)
	}
	return nil
}

// validateNumber accepts JSON numbers and numeric strings, since respondent
// input arrives as text.
func validateNumber(value any) error {
	switch v := value.(type) {
	case float64, float32, int, int32, int64, uint, uint32, uint64:
		return nil
	case json.Number:
		if _, err := v.Float64(); err != nil {
			return fmt.Errorf("not a number")
		}
		return nil
	case string:
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("not a number")
		}
		return nil
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
}

func (n *Node) validateArray(value any) error {
	var items []any
	switch v := value.(type) {
	case []any:
		items = v
	case []string:
		items = make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
	default:
		return fmt.Errorf("expected array, got %T", value)
	}
	if n.MinItems != nil && len(items) < *n.MinItems {
		return fmt.Errorf("fewer than %d items", *n.MinItems)
	}
	if n.MaxItems != nil && len(items) > *n.MaxItems {
		return fmt.Errorf("more than %d items", *n.MaxItems)
	}
	if n.Items != nil {
		for i, item := range items {
			if err := n.Items.ValidateValue(item); err != nil {
				return fmt.Errorf("item %d: %v", i, err)
			}
		}
	}
	return nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
