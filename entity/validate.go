package entity

import (
	"strings"

	"github.com/google/uuid"
)

// FieldValidator collects request fields that are absent or malformed so a
// single MissingFieldsError can name all of them.
type FieldValidator struct {
	missing []string
}

// RequireID checks that *value holds a UUID and rewrites it to canonical form.
func (v *FieldValidator) RequireID(field string, value *string) {
	id, err := uuid.Parse(strings.TrimSpace(*value))
	if err != nil {
		v.missing = append(v.missing, field)
		return
	}
	*value = id.String()
}

func (v *FieldValidator) RequireString(field string, value *string) {
	*value = strings.TrimSpace(*value)
	if *value == "" {
		v.missing = append(v.missing, field)
	}
}

func (v *FieldValidator) Require(field string, ok bool) {
	if !ok {
		v.missing = append(v.missing, field)
	}
}

func (v *FieldValidator) Err() error {
	if len(v.missing) == 0 {
		return nil
	}
	return MissingFieldsError{Fields: v.missing}
}
