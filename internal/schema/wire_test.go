package schema

import (
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/pipeline"
)

func TestValidateWireQuiz(t *testing.T) {
	good := []byte(`{"title": "t", "questions": [{"type": "mcq", "content": "c", "options": ["a","b","c"]}]}`)
	if err := ValidateWire(QuizResponseSchema, good); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}

	bad := map[string]string{
		"no title":      `{"questions": []}`,
		"no questions":  `{"title": "t"}`,
		"bad type enum": `{"title": "t", "questions": [{"type": "essay", "content": "c"}]}`,
		"no content":    `{"title": "t", "questions": [{"type": "mcq"}]}`,
	}
	for name, doc := range bad {
		err := ValidateWire(QuizResponseSchema, []byte(doc))
		var sv *pipeline.SchemaViolationError
		if !errors.As(err, &sv) {
			t.Fatalf("%s: err = %v, want schema violation", name, err)
		}
	}
}

func TestValidateWireGrades(t *testing.T) {
	good := []byte(`{"gradedAnswers": [{"questionId": "q", "isCorrect": true, "score": 5, "justification": "ok"}]}`)
	if err := ValidateWire(GradeResponseSchema, good); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
	// Negative scores never validate; the rubric floor starts at the wire.
	neg := []byte(`{"gradedAnswers": [{"questionId": "q", "isCorrect": true, "score": -1, "justification": "ok"}]}`)
	if err := ValidateWire(GradeResponseSchema, neg); err == nil {
		t.Fatal("negative score accepted")
	}
}
