package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	s := New("p1", "Girder Inspection")
	s.Fields = []Field{
		NewField(s.ID, "span_length", FieldTypeNumber, 0),
		NewField(s.ID, "material", FieldTypeSelect, 1),
	}
	s.Fields[1].Options = []string{"steel", "concrete"}
	return s
}

func TestNewGeneratesIdentity(t *testing.T) {
	s := New("p1", "Girder Inspection")

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "p1", s.ProjectID)
	assert.True(t, s.IsActive)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSchemaValidate(t *testing.T) {
	require.NoError(t, validSchema().Validate())
}

func TestSchemaValidateErrors(t *testing.T) {
	tests := map[string]func(*Schema){
		"missing name": func(s *Schema) {
			s.Name = ""
		},
		"no fields": func(s *Schema) {
			s.Fields = nil
		},
		"duplicate field names": func(s *Schema) {
			s.Fields = append(s.Fields, NewField(s.ID, "span_length", FieldTypeText, 2))
		},
		"unknown field type": func(s *Schema) {
			s.Fields[0].Type = "geometry"
		},
		"select without options": func(s *Schema) {
			s.Fields[1].Options = nil
		},
		"unnamed field": func(s *Schema) {
			s.Fields[0].Name = ""
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			s := validSchema()
			mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestSchemaFieldLookup(t *testing.T) {
	s := validSchema()

	f, ok := s.Field("material")
	require.True(t, ok)
	assert.Equal(t, FieldTypeSelect, f.Type)

	_, ok = s.Field("nonexistent")
	assert.False(t, ok)
}
