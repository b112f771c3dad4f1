package form

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveValidationSchemaText(t *testing.T) {
	tests := []struct {
		sub     SubType
		typ     string
		format  string
		pattern string
	}{
		{SubShort, "string", "", ""},
		{SubLong, "string", "", ""},
		{SubAddress, "string", "", ""},
		{SubEmail, "string", "email", ""},
		{SubNumber, "number", "", ""},
		{SubURL, "string", "uri", ""},
		{SubPhone, "string", "", `^\d{10}$`},
	}

	for _, tt := range tests {
		t.Run(string(tt.sub), func(t *testing.T) {
			node := DeriveValidationSchema(&Question{Type: TypeText, SubType: tt.sub})
			require.NotNil(t, node)
			assert.Equal(t, tt.typ, node.Type)
			assert.Equal(t, tt.format, node.Format)
			assert.Equal(t, tt.pattern, node.Pattern)
		})
	}
}

func TestDeriveValidationSchemaShortTextBounds(t *testing.T) {
	node := DeriveValidationSchema(&Question{Type: TypeText, SubType: SubShort})
	require.NotNil(t, node)
	assert.Equal(t, 1, *node.MinLength)
	assert.Equal(t, 500, *node.MaxLength)
}

func TestDeriveValidationSchemaPassword(t *testing.T) {
	node := DeriveValidationSchema(&Question{Type: TypeText, SubType: SubPassword})
	require.NotNil(t, node)
	assert.Equal(t, 8, *node.MinLength)
	assert.Equal(t, 100, *node.MaxLength)
	require.Len(t, node.AllOf, 4)

	assert.NoError(t, node.ValidateValue("Str0ng!pass"))
	assert.Error(t, node.ValidateValue("weakpassword"), "no upper, digit or special")
	assert.Error(t, node.ValidateValue("Sh0r!"), "too short")
}

func TestDeriveValidationSchemaSelect(t *testing.T) {
	single := DeriveValidationSchema(&Question{Type: TypeSelect, SubType: SubSingle, Options: []string{"x", "y"}})
	require.NotNil(t, single)
	assert.Equal(t, "array", single.Type)
	assert.Equal(t, []string{"x", "y"}, single.Items.Enum)
	assert.Equal(t, 1, *single.MinItems)
	assert.Equal(t, 1, *single.MaxItems)

	multiple := DeriveValidationSchema(&Question{Type: TypeSelect, SubType: SubMultiple, Options: []string{"x", "y"}})
	require.NotNil(t, multiple)
	assert.Equal(t, []string{"x", "y"}, multiple.Items.Enum)
	assert.Equal(t, 1, *multiple.MinItems)
	assert.Nil(t, multiple.MaxItems, "multiple select has no upper bound")
}

func TestDeriveValidationSchemaUnmapped(t *testing.T) {
	assert.Nil(t, DeriveValidationSchema(&Question{Type: TypeText, SubType: SubType("video")}))
	assert.Nil(t, DeriveValidationSchema(&Question{Type: QuestionType("file"), SubType: SubShort}))
}

func TestBuildSchemaOneRequiredPropertyPerQuestion(t *testing.T) {
	f := &Form{
		Questions: QuestionList{
			{ID: "q1", Type: TypeText, SubType: SubShort},
			{ID: "q2", Type: TypeSelect, SubType: SubSingle, Options: []string{"a"}},
			{ID: "q3", Type: TypeText, SubType: SubType("unmapped")},
		},
	}
	require.NoError(t, f.BuildSchema())

	doc, err := f.Document()
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, doc.Required, "unmapped subtype contributes no property")
	assert.Len(t, doc.Properties, 2)
}

func TestQuestionValidate(t *testing.T) {
	assert.NoError(t, (&Question{Type: TypeText, SubType: SubEmail}).Validate())
	assert.Error(t, (&Question{Type: TypeText, SubType: SubSingle}).Validate(), "select subtype on text question")
	assert.Error(t, (&Question{Type: TypeSelect, SubType: SubSingle}).Validate(), "select without options")
	assert.NoError(t, (&Question{Type: TypeSelect, SubType: SubMultiple, Options: []string{"a"}}).Validate())
}

func TestRuleValueJSONShapes(t *testing.T) {
	var q Question
	payload := []byte(`{"id":"q1","type":"text","subType":"short","logic":[
		{"questionId":"q1","condition":"is","value":"solo","skipTo":"end"},
		{"questionId":"q1","condition":"is_one_of","value":["a","b"],"skipTo":"end"}
	]}`)
	require.NoError(t, json.Unmarshal(payload, &q))

	assert.Equal(t, RuleValue{"solo"}, q.Logic[0].Value)
	assert.Equal(t, RuleValue{"a", "b"}, q.Logic[1].Value)
}

func TestBuildSchemaValidatesAnswers(t *testing.T) {
	f := &Form{
		Questions: QuestionList{
			{ID: "q1", Type: TypeSelect, SubType: SubSingle, Options: []string{"Yes", "No"}},
		},
	}
	require.NoError(t, f.BuildSchema())
	doc, err := f.Document()
	require.NoError(t, err)

	assert.NoError(t, doc.Validate(map[string]any{"q1": []any{"Yes"}}))
	assert.Error(t, doc.Validate(map[string]any{"q1": []any{"Maybe"}}))
	assert.Error(t, doc.Validate(map[string]any{}))
	assert.Error(t, doc.Validate(map[string]any{"q1": []any{"Yes"}, "ghost": "x"}))
}
