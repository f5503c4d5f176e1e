package transport

import (
	"encoding/json"

	"github.com/google/uuid"
)

// OptionalUUID distinguishes an absent JSON field from an explicit null.
type OptionalUUID struct {
	Value *uuid.UUID
	Set   bool
}

// IsZero reports whether the field was absent from the request body.
func (o OptionalUUID) IsZero() bool {
	return !o.Set
}

// UnmarshalJSON accepts a UUID string, an empty string, or null.
func (o *OptionalUUID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		o.Value = nil
		return nil
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return err
	}

	o.Value = &parsed
	return nil
}
