package params

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Field names used in InputError.
const (
	FieldComponents  = "components"
	FieldHealthcheck = "healthcheckComponents"
)

// InputError reports a structured parameter that could not be decoded.
type InputError struct {
	Field string
	Raw   string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Raw, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// DecodeList decodes a JSON array of strings. Blank input decodes to an
// empty list.
func DecodeList(field, raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &InputError{Field: field, Raw: raw, Err: err}
	}
	if out == nil {
		// "null" decodes to a nil slice.
		out = []string{}
	}
	return out, nil
}

// DecodeComponents decodes the components field.
func (p *Parameters) DecodeComponents() ([]string, error) {
	return DecodeList(FieldComponents, p.Components)
}

// DecodeHealthcheck decodes the health-check components field, preserving order.
func (p *Parameters) DecodeHealthcheck() ([]string, error) {
	return DecodeList(FieldHealthcheck, p.HealthcheckComponents)
}
