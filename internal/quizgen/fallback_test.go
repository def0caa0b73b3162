package quizgen

import (
	"reflect"
	"strings"
	"testing"
)

func TestFallbackDeterministic(t *testing.T) {
	text := "Photosynthesis converts light into chemical energy\nChlorophyll absorbs light"
	a := Fallback(text, 3, 2)
	b := Fallback(text, 3, 2)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("fallback not deterministic for identical input")
	}
}

func TestFallbackShape(t *testing.T) {
	text := "line one\n\nline two\nline three"
	q := Fallback(text, 2, 2)

	if q.Title != FallbackTitle {
		t.Fatalf("title = %q, want %q", q.Title, FallbackTitle)
	}
	if len(q.Questions) != 4 {
		t.Fatalf("got %d questions, want 4", len(q.Questions))
	}
	for i := 0; i < 2; i++ {
		mcq := q.Questions[i]
		if mcq.Type != TypeMCQ {
			t.Fatalf("question %d type = %q, want mcq", i, mcq.Type)
		}
		if !reflect.DeepEqual(mcq.Options, fallbackOptions) {
			t.Fatalf("question %d options = %v", i, mcq.Options)
		}
		if mcq.CorrectAnswer != "Option A (fallback)" {
			t.Fatalf("question %d correctAnswer = %q", i, mcq.CorrectAnswer)
		}
		if mcq.MaxScore != DefaultMaxScore {
			t.Fatalf("question %d maxScore = %v", i, mcq.MaxScore)
		}
	}
	for i := 2; i < 4; i++ {
		txt := q.Questions[i]
		if txt.Type != TypeText {
			t.Fatalf("question %d type = %q, want text", i, txt.Type)
		}
		if len(txt.Options) != 0 {
			t.Fatalf("text question %d has options", i)
		}
		if txt.CorrectAnswer != "Reference answer (fallback)" {
			t.Fatalf("question %d correctAnswer = %q", i, txt.CorrectAnswer)
		}
	}

	// Content cycles through non-empty lines: question 3 (index 2) wraps
	// back to "line one".
	if !strings.Contains(q.Questions[2].Content, "line one") {
		t.Fatalf("question 3 content = %q, want reference to line one", q.Questions[2].Content)
	}
}

func TestFallbackUniqueIDs(t *testing.T) {
	q := Fallback("x", 20, 20)
	seen := make(map[string]struct{})
	for _, qu := range q.Questions {
		if _, dup := seen[qu.ID]; dup {
			t.Fatalf("duplicate id %q", qu.ID)
		}
		seen[qu.ID] = struct{}{}
	}
}

func TestFallbackSingleLineNoPunctuation(t *testing.T) {
	// One 60-char line with no punctuation: every question draws from it.
	text := strings.Repeat("abcde ", 10)
	q := Fallback(text, 3, 2)
	if len(q.Questions) != 5 {
		t.Fatalf("got %d questions, want 5", len(q.Questions))
	}
	want := strings.TrimSpace(text)
	for i, qu := range q.Questions {
		if !strings.Contains(qu.Content, want) {
			t.Fatalf("question %d content %q does not reference the source line", i, qu.Content)
		}
	}
}

func TestFallbackSnippetTruncation(t *testing.T) {
	long := strings.Repeat("a", 200)
	q := Fallback(long, 1, 0)
	content := q.Questions[0].Content
	if strings.Contains(content, long) {
		t.Fatal("snippet not truncated")
	}
	if !strings.Contains(content, strings.Repeat("a", 80)+"...") {
		t.Fatalf("snippet missing ellipsis: %q", content)
	}
}
