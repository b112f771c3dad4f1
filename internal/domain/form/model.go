package form

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/user"
	"github.com/formflowhq/formflow/pkg/jsonschema"
)

type FormStatus string

const (
	StatusDraft     FormStatus = "draft"
	StatusPublished FormStatus = "published"
)

type Form struct {
	gorm.Model
	PublicID  string         `json:"public_id" gorm:"uniqueIndex;size:36"`
	UserID    uint           `json:"user_id" gorm:"index"`
	Name      string         `json:"name"`
	Status    FormStatus     `json:"status" gorm:"default:'draft'"`
	Questions QuestionList   `json:"questions" gorm:"type:jsonb"`
	Schema    datatypes.JSON `json:"formSchema" gorm:"type:jsonb"`
	User      user.User      `json:"-" gorm:"foreignKey:UserID"`
}

// BuildSchema derives the document validation schema from the current
// question list. Called on every mutation so the persisted schema never
// drifts from the questions.
func (f *Form) BuildSchema() error {
	props := make([]jsonschema.Property, 0, len(f.Questions))
	for i := range f.Questions {
		q := &f.Questions[i]
		props = append(props, jsonschema.Property{Key: q.ID, Node: DeriveValidationSchema(q)})
	}
	doc := jsonschema.Compose(props)
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	f.Schema = datatypes.JSON(data)
	return nil
}

// Document decodes the persisted schema for answer validation.
func (f *Form) Document() (*jsonschema.Document, error) {
	var doc jsonschema.Document
	if len(f.Schema) == 0 {
		return jsonschema.Compose(nil), nil
	}
	if err := json.Unmarshal(f.Schema, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
