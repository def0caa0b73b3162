package concepts

import (
	"reflect"
	"strings"
	"testing"
)

func TestFallbackSentences(t *testing.T) {
	text := "Photosynthesis converts light energy into glucose. Chlorophyll absorbs mostly red and blue light! Short. Does the stomata regulate gas exchange in the leaf?"
	answers := Fallback(text)
	if len(answers) != 3 {
		t.Fatalf("got %d answers, want 3", len(answers))
	}
	// "Short" is under the length cutoff and is skipped.
	for _, a := range answers {
		if strings.TrimSpace(a.Explanation) == "Short" {
			t.Fatal("short sentence should be filtered out")
		}
	}
	if answers[0].ID != "fallback-1" || answers[2].ID != "fallback-3" {
		t.Fatalf("ids = %q, %q", answers[0].ID, answers[2].ID)
	}
	if answers[0].Explanation != "Photosynthesis converts light energy into glucose" {
		t.Fatalf("explanation = %q", answers[0].Explanation)
	}
}

func TestFallbackCapsAtFive(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("This is a sufficiently long qualifying sentence number one. ")
	}
	answers := Fallback(sb.String())
	if len(answers) != 5 {
		t.Fatalf("got %d answers, want 5", len(answers))
	}
}

func TestFallbackTopicTruncation(t *testing.T) {
	long := strings.Repeat("w", 120) + "."
	answers := Fallback(long)
	topic := answers[0].Topic
	if topic != strings.Repeat("w", 50)+"..." {
		t.Fatalf("topic = %q", topic)
	}
}

func TestFallbackPlaceholderWhenNothingQualifies(t *testing.T) {
	answers := Fallback("too short. tiny! no?")
	want := []KeyAnswer{{
		ID:            "fallback-1",
		Topic:         "Key Concept",
		Explanation:   "Review the uploaded material to understand the main concepts.",
		SourceSnippet: "too short. tiny! no?",
	}}
	if !reflect.DeepEqual(answers, want) {
		t.Fatalf("answers = %+v", answers)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	text := "Photosynthesis converts light energy into glucose. Chlorophyll absorbs mostly red and blue light."
	if !reflect.DeepEqual(Fallback(text), Fallback(text)) {
		t.Fatal("fallback not deterministic")
	}
}
