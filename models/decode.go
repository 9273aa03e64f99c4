package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a required field that was absent or null in a payload.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("models: %s is missing required field %q", e.Type, e.Field)
}

// requireFields checks that data is a JSON object carrying every field with a non-null value.
func requireFields(typ string, data []byte, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return &MissingFieldError{Type: typ, Field: fields[0]}
	}
	for _, f := range fields {
		v, ok := raw[f]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return &MissingFieldError{Type: typ, Field: f}
		}
	}
	return nil
}
