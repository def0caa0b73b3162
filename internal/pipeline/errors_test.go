package pipeline

import (
	"errors"
	"fmt"
	"testing"
)

func TestShouldFallback(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{ErrUpstreamUnavailable, true},
		{fmt.Errorf("wrapped: %w", ErrUpstreamUnavailable), true},
		{SchemaViolation("bad payload"), true},
		{InvalidRequest("context", "required"), false},
		{ErrGradingUnavailable, false},
		{errors.New("something else"), false},
		{nil, false},
	}
	for i, c := range cases {
		if got := ShouldFallback(c.err); got != c.want {
			t.Errorf("case %d: ShouldFallback(%v) = %v, want %v", i, c.err, got, c.want)
		}
	}
}

func TestInvalidRequestError(t *testing.T) {
	err := InvalidRequest("numMcq", "must be between 0 and 20")
	if !IsInvalidRequest(err) {
		t.Fatal("IsInvalidRequest = false")
	}
	if IsInvalidRequest(errors.New("other")) {
		t.Fatal("IsInvalidRequest matched a foreign error")
	}
	if got := err.Error(); got != "invalid request: numMcq: must be between 0 and 20" {
		t.Fatalf("message = %q", got)
	}
	if got := InvalidRequest("", "no questions").Error(); got != "invalid request: no questions" {
		t.Fatalf("message = %q", got)
	}
}

func TestNormalizeDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"easy":     DifficultyEasy,
		"beginner": DifficultyEasy,
		"medium":   DifficultyMedium,
		"hard":     DifficultyHard,
		"advanced": DifficultyHard,
		"":         DifficultyMedium,
		"extreme":  DifficultyMedium,
	}
	for in, want := range cases {
		if got := NormalizeDifficulty(in); got != want {
			t.Errorf("NormalizeDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseEducationalLevel(t *testing.T) {
	for _, ok := range []string{"middle_school", "high_school", "junior_college", "diploma", "graduation", "post_graduation"} {
		if _, err := ParseEducationalLevel(ok); err != nil {
			t.Errorf("ParseEducationalLevel(%q): %v", ok, err)
		}
	}
	if _, err := ParseEducationalLevel("kindergarten"); err == nil {
		t.Error("kindergarten accepted")
	}
}
