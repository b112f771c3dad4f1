package form

import "github.com/formflowhq/formflow/pkg/jsonschema"

// DeriveValidationSchema maps a question to its validation fragment. A nil
// result means the (type, subType) pair carries no validation; callers must
// treat that as "no constraint", not as an error.
func DeriveValidationSchema(q *Question) *jsonschema.Node {
	switch q.Type {
	case TypeText:
		return deriveTextSchema(q.SubType)
	case TypeSelect:
		return deriveSelectSchema(q.SubType, q.Options)
	}
	return nil
}

func deriveTextSchema(sub SubType) *jsonschema.Node {
	switch sub {
	case SubShort, SubLong, SubAddress:
		return jsonschema.String(1, 500)
	case SubEmail:
		return jsonschema.StringFormat("email")
	case SubNumber:
		return jsonschema.Number()
	case SubURL:
		return jsonschema.StringFormat("uri")
	case SubPhone:
		return jsonschema.StringPattern(`^\d{10}$`)
	case SubPassword:
		n := jsonschema.String(8, 100)
		n.AllOf = []*jsonschema.Node{
			jsonschema.StringPattern(`[a-z]`),
			jsonschema.StringPattern(`[A-Z]`),
			jsonschema.StringPattern(`\d`),
			jsonschema.StringPattern(`[^a-zA-Z0-9]`),
		}
		return n
	}
	return nil
}

func deriveSelectSchema(sub SubType, options []string) *jsonschema.Node {
	switch sub {
	case SubSingle:
		return jsonschema.EnumArray(options, 1, 1)
	case SubMultiple:
		return jsonschema.EnumArray(options, 1, -1)
	}
	return nil
}
