// Package schema validates structured data at every pipeline boundary:
// caller input (with primitive coercion and defaults) and generative-model
// output (against JSON Schema documents).
package schema

import (
	"fmt"
	"math"
	"strconv"
)

// FieldType enumerates the primitive shapes a field may declare.
type FieldType string

const (
	TypeString      FieldType = "string"
	TypeNumber      FieldType = "number"
	TypeInt         FieldType = "int"
	TypeBool        FieldType = "bool"
	TypeStringArray FieldType = "string_array"
)

// Field declares one property of a Shape.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Default  interface{} // applied when the field is absent (optional fields only)
	Enum     []string    // for TypeString: allowed values
	Min      *float64    // for numeric types: inclusive lower bound
	Max      *float64    // for numeric types: inclusive upper bound
}

// Shape is a declared set of fields. Unknown input fields pass through
// untouched so shapes can be layered across proxy boundaries.
type Shape struct {
	Fields []Field
}

// ValidationError reports the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// Apply validates candidate against the shape and returns a copy with
// primitives coerced to their declared types and defaults filled in.
// It is a pure function: candidate is never mutated.
func (s Shape) Apply(candidate map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(candidate))
	for k, v := range candidate {
		out[k] = v
	}
	for _, f := range s.Fields {
		raw, ok := out[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return nil, &ValidationError{Field: f.Name, Reason: "required"}
			}
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		coerced, err := coerce(f, raw)
		if err != nil {
			return nil, &ValidationError{Field: f.Name, Reason: err.Error()}
		}
		out[f.Name] = coerced
	}
	return out, nil
}

func coerce(f Field, v interface{}) (interface{}, error) {
	switch f.Type {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return nil, fmt.Errorf("value %q not in %v", s, f.Enum)
		}
		return s, nil

	case TypeNumber, TypeInt:
		n, err := toNumber(v)
		if err != nil {
			return nil, err
		}
		if f.Type == TypeInt {
			if n != math.Trunc(n) {
				return nil, fmt.Errorf("expected integer, got %v", n)
			}
		}
		if f.Min != nil && n < *f.Min {
			return nil, fmt.Errorf("value %v below minimum %v", n, *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return nil, fmt.Errorf("value %v above maximum %v", n, *f.Max)
		}
		if f.Type == TypeInt {
			return int(n), nil
		}
		return n, nil

	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil

	case TypeStringArray:
		arr, ok := v.([]interface{})
		if !ok {
			if sa, ok := v.([]string); ok {
				return sa, nil
			}
			return nil, fmt.Errorf("expected array, got %T", v)
		}
		out := make([]string, 0, len(arr))
		for i, e := range arr {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: expected string, got %T", i, e)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown field type %q", f.Type)
}

// toNumber coerces JSON numbers and numeric strings. Callers routinely send
// counts as strings ("5") through form layers.
func toNumber(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		n, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", t)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected number, got %T", v)
	}
}

func contains(ss []string, s string) bool {
	for _, e := range ss {
		if e == s {
			return true
		}
	}
	return false
}

// Bound is a convenience for inline Min/Max pointers.
func Bound(v float64) *float64 { return &v }
