package schema

import (
	"errors"
	"testing"
)

var quizShape = Shape{Fields: []Field{
	{Name: "context", Type: TypeString, Required: true},
	{Name: "numMcq", Type: TypeInt, Default: 0, Min: Bound(0), Max: Bound(20)},
	{Name: "level", Type: TypeString, Enum: []string{"middle_school", "high_school"}},
	{Name: "tags", Type: TypeStringArray},
	{Name: "ratio", Type: TypeNumber, Min: Bound(0), Max: Bound(1)},
	{Name: "strict", Type: TypeBool},
}}

func TestApplyCoercesAndDefaults(t *testing.T) {
	in := map[string]interface{}{
		"context": "cells",
		"numMcq":  "5", // numeric string from a form layer
		"tags":    []interface{}{"bio", "exam"},
		"ratio":   0.5,
		"strict":  true,
		"extra":   "passes through",
	}
	out, err := quizShape.Apply(in)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out["numMcq"] != 5 {
		t.Fatalf("numMcq = %#v, want int 5", out["numMcq"])
	}
	if got := out["tags"].([]string); len(got) != 2 || got[0] != "bio" {
		t.Fatalf("tags = %#v", out["tags"])
	}
	if out["extra"] != "passes through" {
		t.Fatal("unknown fields must pass through")
	}
	// Defaults fill in absent fields; the input map is never touched.
	out2, err := quizShape.Apply(map[string]interface{}{"context": "x"})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out2["numMcq"] != 0 {
		t.Fatalf("default numMcq = %#v", out2["numMcq"])
	}
	if _, ok := in["numMcq"].(string); !ok {
		t.Fatal("Apply mutated its input")
	}
}

func TestApplyRejections(t *testing.T) {
	cases := []struct {
		name  string
		in    map[string]interface{}
		field string
	}{
		{"missing required", map[string]interface{}{}, "context"},
		{"nil required", map[string]interface{}{"context": nil}, "context"},
		{"wrong type", map[string]interface{}{"context": 7}, "context"},
		{"bad enum", map[string]interface{}{"context": "x", "level": "kindergarten"}, "level"},
		{"below min", map[string]interface{}{"context": "x", "numMcq": -1}, "numMcq"},
		{"above max", map[string]interface{}{"context": "x", "numMcq": 21}, "numMcq"},
		{"non-integer", map[string]interface{}{"context": "x", "numMcq": 2.5}, "numMcq"},
		{"not a number", map[string]interface{}{"context": "x", "numMcq": "five"}, "numMcq"},
		{"bad array elem", map[string]interface{}{"context": "x", "tags": []interface{}{1}}, "tags"},
		{"bad bool", map[string]interface{}{"context": "x", "strict": "yes"}, "strict"},
	}
	for _, c := range cases {
		_, err := quizShape.Apply(c.in)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: err = %v, want ValidationError", c.name, err)
		}
		if ve.Field != c.field {
			t.Fatalf("%s: field = %q, want %q", c.name, ve.Field, c.field)
		}
	}
}

func TestApplyBoundsOnNumericString(t *testing.T) {
	// Coercion happens before range checks, so string values still honor
	// the declared bounds.
	_, err := quizShape.Apply(map[string]interface{}{"context": "x", "numMcq": "99"})
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "numMcq" {
		t.Fatalf("err = %v", err)
	}
}
