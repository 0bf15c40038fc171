package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	apierrors "github.com/feral-file/realty-crm/internal/api/shared/errors"
)

// Payload is a JSON object body that remembers which keys the client sent.
// Presence is what required-field checks and partial updates look at, so
// null, "", 0 and false all count as provided.
type Payload struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// ParsePayload parses a request body that must be a JSON object
func ParsePayload(body []byte) (*Payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, apierrors.NewValidationError("Request body is required")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, apierrors.NewValidationError("Request body must be a JSON object")
	}

	return &Payload{raw: body, fields: fields}, nil
}

// Has reports whether the key was sent
func (p *Payload) Has(key string) bool {
	_, ok := p.fields[key]
	return ok
}

// Raw returns the raw JSON of a key, nil when absent
func (p *Payload) Raw(key string) json.RawMessage {
	return p.fields[key]
}

// RequireFields returns a validation error naming the first missing key
func (p *Payload) RequireFields(keys ...string) error {
	for _, key := range keys {
		if !p.Has(key) {
			return apierrors.NewValidationError(fmt.Sprintf("%s is required", key))
		}
	}
	return nil
}

// String returns the key as a string, empty when absent, null or not a string
func (p *Payload) String(key string) string {
	raw, ok := p.fields[key]
	if !ok {
		return ""
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return ""
	}
	return value
}

// Decode unmarshals the whole body into v
func (p *Payload) Decode(v interface{}) error {
	if err := json.Unmarshal(p.raw, v); err != nil {
		return apierrors.NewValidationError("Invalid request body", err.Error())
	}
	return nil
}

// FieldDecoder converts the raw JSON of one key into the value written to its column
type FieldDecoder func(key string, raw json.RawMessage) (interface{}, error)

// UpdateField maps a JSON key to a column and its decoder
type UpdateField struct {
	Column string
	Decode FieldDecoder
}

// Updates builds the column map of a partial update from the keys that were sent.
// Keys missing from fields are ignored, which keeps id, createdBy and createdAt read-only.
func (p *Payload) Updates(fields map[string]UpdateField) (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	for key, raw := range p.fields {
		field, ok := fields[key]
		if !ok {
			continue
		}
		value, err := field.Decode(key, raw)
		if err != nil {
			return nil, err
		}
		updates[field.Column] = value
	}
	return updates, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func invalidField(key string, kind string) error {
	return apierrors.NewValidationError(fmt.Sprintf("%s must be %s", key, kind))
}

// StringField decodes a non-null string
func StringField(key string, raw json.RawMessage) (interface{}, error) {
	var value string
	if isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return nil, invalidField(key, "a string")
	}
	return value, nil
}

// NullableStringField decodes a string or null
func NullableStringField(key string, raw json.RawMessage) (interface{}, error) {
	if isNull(raw) {
		return nil, nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, invalidField(key, "a string or null")
	}
	return value, nil
}

// FloatField decodes a number
func FloatField(key string, raw json.RawMessage) (interface{}, error) {
	var value float64
	if isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return nil, invalidField(key, "a number")
	}
	return value, nil
}

// IntField decodes an integer
func IntField(key string, raw json.RawMessage) (interface{}, error) {
	var value int
	if isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return nil, invalidField(key, "an integer")
	}
	return value, nil
}

// BoolField decodes a boolean
func BoolField(key string, raw json.RawMessage) (interface{}, error) {
	var value bool
	if isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return nil, invalidField(key, "a boolean")
	}
	return value, nil
}

// StringSliceField decodes an array of strings
func StringSliceField(key string, raw json.RawMessage) (interface{}, error) {
	var value []string
	if isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return nil, invalidField(key, "an array of strings")
	}
	return datatypes.JSONSlice[string](value), nil
}

// CoercedStringSliceField decodes an array of strings, falling back to an empty array
func CoercedStringSliceField(_ string, raw json.RawMessage) (interface{}, error) {
	return CoerceStringSlice(raw), nil
}

// JSONObjectField decodes a JSON object kept as opaque JSON
func JSONObjectField(key string, raw json.RawMessage) (interface{}, error) {
	if !IsJSONObject(raw) {
		return nil, apierrors.NewValidationError(fmt.Sprintf("%s must be a valid JSON object", key))
	}
	return datatypes.JSON(bytes.TrimSpace(raw)), nil
}

// CoerceStringSlice returns the raw array of strings or an empty array when it is anything else
func CoerceStringSlice(raw json.RawMessage) datatypes.JSONSlice[string] {
	var value []string
	if len(raw) == 0 || isNull(raw) || json.Unmarshal(raw, &value) != nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.JSONSlice[string](value)
}

// IsJSONObject reports whether raw holds a JSON object
func IsJSONObject(raw json.RawMessage) bool {
	var value map[string]json.RawMessage
	return len(raw) > 0 && json.Unmarshal(raw, &value) == nil && value != nil
}
