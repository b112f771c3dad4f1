package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateString(t *testing.T) {
	node := String(1, 5)
	assert.NoError(t, node.ValidateValue("ok"))
	assert.Error(t, node.ValidateValue(""))
	assert.Error(t, node.ValidateValue("too long"))
	assert.Error(t, node.ValidateValue(42))
}

func TestValidateFormats(t *testing.T) {
	email := StringFormat("email")
	assert.NoError(t, email.ValidateValue("a@b.co"))
	assert.Error(t, email.ValidateValue("not-an-email"))

	uri := StringFormat("uri")
	assert.NoError(t, uri.ValidateValue("https://example.com/x"))
	assert.Error(t, uri.ValidateValue("example"))
}

func TestValidatePattern(t *testing.T) {
	phone := StringPattern(`^\d{10}$`)
	assert.NoError(t, phone.ValidateValue("0123456789"))
	assert.Error(t, phone.ValidateValue("12345"))
	assert.Error(t, phone.ValidateValue("123456789x"))
}

func TestValidateNumber(t *testing.T) {
	n := Number()
	assert.NoError(t, n.ValidateValue(float64(3.5)))
	assert.NoError(t, n.ValidateValue("42"), "numeric text input is accepted")
	assert.Error(t, n.ValidateValue("forty-two"))
	assert.Error(t, n.ValidateValue([]any{1}))
}

func TestValidateEnumArray(t *testing.T) {
	n := EnumArray([]string{"a", "b"}, 1, 1)
	assert.NoError(t, n.ValidateValue([]any{"a"}))
	assert.Error(t, n.ValidateValue([]any{}))
	assert.Error(t, n.ValidateValue([]any{"a", "b"}), "single select allows exactly one")
	assert.Error(t, n.ValidateValue([]any{"c"}))

	open := EnumArray([]string{"a", "b"}, 1, -1)
	assert.NoError(t, open.ValidateValue([]string{"a", "b"}))
}

func TestComposeSkipsNilNodes(t *testing.T) {
	doc := Compose([]Property{
		{Key: "q1", Node: String(1, 10)},
		{Key: "q2", Node: nil},
	})
	assert.Equal(t, []string{"q1"}, doc.Required)
	assert.Len(t, doc.Properties, 1)
}
