package schema

import (
	"fmt"
	"time"
)

// FieldError describes a single failed check when validating component data
// against a schema.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of validating one component's field values
// against a schema.
type ValidationResult struct {
	SchemaID string       `json:"schema_id"`
	Valid    bool         `json:"valid"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// dateLayouts are accepted formats for date field values.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ValidateData checks component field values against the schema's field
// definitions: required fields must be present and non-empty, values must
// match their declared type, select values must be one of the configured
// options, and keys without a field definition are rejected.
func ValidateData(s *Schema, data map[string]any) ValidationResult {
	res := ValidationResult{SchemaID: s.ID, Valid: true}

	for _, f := range s.Fields {
		value, present := data[f.Name]
		if !present || value == nil || value == "" {
			if f.Required {
				res.fail(f.Name, "required field is missing")
			}
			continue
		}
		if msg := checkValue(f, value); msg != "" {
			res.fail(f.Name, msg)
		}
	}

	for name := range data {
		if _, ok := s.Field(name); !ok {
			res.fail(name, "no field definition in schema")
		}
	}

	return res
}

func (r *ValidationResult) fail(field, msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}

func checkValue(f Field, value any) string {
	switch f.Type {
	case FieldTypeText, FieldTypeTextarea:
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("expected string, got %T", value)
		}
	case FieldTypeNumber:
		switch value.(type) {
		case int, int32, int64, float32, float64:
		default:
			return fmt.Sprintf("expected number, got %T", value)
		}
	case FieldTypeCheckbox:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("expected boolean, got %T", value)
		}
	case FieldTypeDate:
		str, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected date string, got %T", value)
		}
		if !parseableDate(str) {
			return "invalid date format"
		}
	case FieldTypeSelect:
		str, ok := value.(string)
		if !ok {
			return fmt.Sprintf("expected string, got %T", value)
		}
		for _, opt := range f.Options {
			if str == opt {
				return ""
			}
		}
		return "value is not an allowed option"
	}
	return ""
}

func parseableDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
