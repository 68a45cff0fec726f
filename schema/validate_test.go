package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inspectionSchema() *Schema {
	s := New("p1", "Girder Inspection")
	s.Fields = []Field{
		NewField(s.ID, "span_length", FieldTypeNumber, 0),
		NewField(s.ID, "material", FieldTypeSelect, 1),
		NewField(s.ID, "inspected_on", FieldTypeDate, 2),
		NewField(s.ID, "galvanized", FieldTypeCheckbox, 3),
		NewField(s.ID, "notes", FieldTypeTextarea, 4),
	}
	s.Fields[0].Required = true
	s.Fields[1].Options = []string{"steel", "concrete", "timber"}
	return s
}

func TestValidateDataValid(t *testing.T) {
	res := ValidateData(inspectionSchema(), map[string]any{
		"span_length":  42.5,
		"material":     "steel",
		"inspected_on": "2026-08-01",
		"galvanized":   true,
		"notes":        "minor corrosion at east bearing",
	})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateDataErrors(t *testing.T) {
	tests := map[string]struct {
		data  map[string]any
		field string
	}{
		"missing required": {
			data:  map[string]any{"material": "steel"},
			field: "span_length",
		},
		"wrong number type": {
			data:  map[string]any{"span_length": "forty-two"},
			field: "span_length",
		},
		"unknown select option": {
			data:  map[string]any{"span_length": 1, "material": "plastic"},
			field: "material",
		},
		"bad date": {
			data:  map[string]any{"span_length": 1, "inspected_on": "yesterday"},
			field: "inspected_on",
		},
		"non-boolean checkbox": {
			data:  map[string]any{"span_length": 1, "galvanized": "yes"},
			field: "galvanized",
		},
		"undefined field": {
			data:  map[string]any{"span_length": 1, "load_rating": 5},
			field: "load_rating",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			res := ValidateData(inspectionSchema(), tc.data)

			require.False(t, res.Valid)
			fields := make([]string, len(res.Errors))
			for i, fe := range res.Errors {
				fields[i] = fe.Field
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestValidateDataOptionalEmpty(t *testing.T) {
	// optional fields may be absent or empty without error
	res := ValidateData(inspectionSchema(), map[string]any{
		"span_length": 12,
		"notes":       "",
	})

	assert.True(t, res.Valid)
}

func TestValidateDataDateFormats(t *testing.T) {
	s := inspectionSchema()

	for _, date := range []string{"2026-08-01", "2026-08-01T10:30:00Z"} {
		res := ValidateData(s, map[string]any{"span_length": 1, "inspected_on": date})
		assert.True(t, res.Valid, "date %q should parse", date)
	}
}
