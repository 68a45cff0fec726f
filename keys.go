package schemacache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache keys are derived deterministically from domain parameters so that
// logically-equal lookups always address the same entry.
const (
	schemaKeyPrefix     = "schema:"
	schemaListKeyPrefix = "schemas:"
	fieldsKeyPrefix     = "fields:"
	validationKeyPrefix = "validation:"
)

// ListFilter selects which schemas a list lookup covers. Equal filters
// produce equal cache keys regardless of how they were constructed.
type ListFilter struct {
	ProjectID     string `json:"project_id"`
	IncludeGlobal bool   `json:"include_global"`
}

func schemaKey(id string) string {
	return schemaKeyPrefix + id
}

func schemaListKey(f ListFilter) string {
	return fmt.Sprintf("%s%s:%t", schemaListKeyPrefix, f.ProjectID, f.IncludeGlobal)
}

func fieldsKey(schemaID string) string {
	return fieldsKeyPrefix + schemaID
}

// validationKey hashes a canonical serialization of the data under
// validation. encoding/json sorts map keys, so logically-equal data maps
// hash to the same key independent of construction order.
func validationKey(schemaID string, data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		// Non-serializable data is a caller programming error; fall back to
		// a stable-enough representation rather than failing the lookup.
		b = fmt.Appendf(nil, "%v", data)
	}
	sum := sha256.Sum256(b)
	return validationKeyPrefix + schemaID + ":" + hex.EncodeToString(sum[:])
}
