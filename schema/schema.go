package schema

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// FieldType enumerates the value types a schema field can hold.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
)

// FieldTypes lists every supported field type.
var FieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeTextarea,
	FieldTypeNumber,
	FieldTypeDate,
	FieldTypeCheckbox,
	FieldTypeSelect,
}

// Field is a single field definition within a schema.
type Field struct {
	ID       string    `json:"id"`
	SchemaID string    `json:"schema_id"`
	Name     string    `json:"field_name"`
	Type     FieldType `json:"field_type"`
	Required bool      `json:"is_required"`
	Order    int       `json:"display_order"`
	// Options holds the allowed values for select fields.
	Options []string `json:"options,omitempty"`
}

// Schema is a component schema: a named, ordered set of field definitions
// belonging to a project (or shared globally).
type Schema struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Fields      []Field   `json:"fields"`
	IsActive    bool      `json:"is_active"`
	IsGlobal    bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates a schema with a generated ID and timestamps set to now.
func New(projectID, name string) *Schema {
	now := time.Now().UTC()
	return &Schema{
		ID:        uuid.NewString(),
		ProjectID: projectID,
		Name:      name,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewField creates a field definition with a generated ID.
func NewField(schemaID, name string, typ FieldType, order int) Field {
	return Field{
		ID:       uuid.NewString(),
		SchemaID: schemaID,
		Name:     name,
		Type:     typ,
		Order:    order,
	}
}

// Field returns the field definition with the given name, if any.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks the schema definition itself: a name within bounds, at
// least one field, unique field names, and known field types.
func (s *Schema) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&s.Fields, validation.Required, validation.By(validateFields)),
	)
}

func validateFields(value any) error {
	fields, _ := value.([]Field)
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := f.ValidateDefinition(); err != nil {
			return err
		}
		if _, dup := seen[f.Name]; dup {
			return validation.NewError("validation_duplicate_field", "duplicate field name: "+f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

// ValidateDefinition checks a single field definition.
func (f Field) ValidateDefinition() error {
	types := make([]any, len(FieldTypes))
	for i, t := range FieldTypes {
		types[i] = t
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&f.Type, validation.Required, validation.In(types...)),
		validation.Field(&f.Options, validation.By(func(any) error {
			if f.Type == FieldTypeSelect && len(f.Options) == 0 {
				return validation.NewError("validation_select_options", "select field requires options")
			}
			return nil
		})),
	)
}
