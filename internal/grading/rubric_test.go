package grading

import "testing"

func TestLatencyCapSteps(t *testing.T) {
	cases := []struct {
		seconds float64
		want    float64
	}{
		{0, 10},
		{2, 10},
		{60, 10},
		{61, 9},
		{300, 9},
		{301, 8},
		{600, 8},
		{100000, 8},
	}
	for _, c := range cases {
		if got := latencyCap(c.seconds); got != c.want {
			t.Errorf("latencyCap(%v) = %v, want %v", c.seconds, got, c.want)
		}
	}
}

func TestLatencyCapMonotonic(t *testing.T) {
	prev := latencyCap(0)
	for s := 1.0; s <= 1000; s++ {
		cur := latencyCap(s)
		if cur > prev {
			t.Fatalf("cap increased at %v seconds: %v -> %v", s, prev, cur)
		}
		prev = cur
	}
}

func TestRubricIncorrectScoresZero(t *testing.T) {
	sa := StudentAnswer{
		QuestionContent: "q",
		Answer:          SingleAnswer("wrong"),
		CorrectAnswer:   "right",
	}
	// Whatever score the model claimed, incorrect means 0.
	g := applyRubric(sa, false, 7, "off topic")
	if g.IsCorrect || g.Score != 0 {
		t.Fatalf("got isCorrect=%v score=%v", g.IsCorrect, g.Score)
	}
	if g.Justification != "off topic" {
		t.Fatalf("justification = %q", g.Justification)
	}
}

func TestRubricCorrectCappedByLatency(t *testing.T) {
	sa := StudentAnswer{
		QuestionContent:  "q",
		Answer:           SingleAnswer("an essay answer"),
		TimeTakenSeconds: 120,
	}
	g := applyRubric(sa, true, 10, "good")
	if g.Score != 9 {
		t.Fatalf("score = %v, want capped to 9", g.Score)
	}
	// A model score under the cap is kept as-is.
	g = applyRubric(sa, true, 6, "partial")
	if g.Score != 6 {
		t.Fatalf("score = %v, want 6", g.Score)
	}
}

func TestRubricExactMatchOverridesModel(t *testing.T) {
	sa := StudentAnswer{
		QuestionContent:  "q",
		Answer:           SingleAnswer("  The Mitochondria! "),
		CorrectAnswer:    "the mitochondria",
		TimeTakenSeconds: 2,
	}
	// The model judged it wrong; the normalized exact match wins.
	g := applyRubric(sa, false, 0, "")
	if !g.IsCorrect || g.Score != 10 {
		t.Fatalf("got isCorrect=%v score=%v, want true/10", g.IsCorrect, g.Score)
	}

	sa.TimeTakenSeconds = 600
	g = applyRubric(sa, false, 0, "")
	if !g.IsCorrect || g.Score != 8 {
		t.Fatalf("slow exact match: isCorrect=%v score=%v, want true/8", g.IsCorrect, g.Score)
	}
}

func TestRubricExactMatchSkipsMultiSelect(t *testing.T) {
	sa := StudentAnswer{
		QuestionContent: "q",
		Answer:          MultiAnswer([]string{"a", "b"}),
		CorrectAnswer:   "a, b",
	}
	g := applyRubric(sa, false, 0, "missed one")
	if g.IsCorrect {
		t.Fatal("multi-select answers must not take the exact-match shortcut")
	}
}

func TestRubricDefaultJustifications(t *testing.T) {
	sa := StudentAnswer{QuestionContent: "q", Answer: SingleAnswer("x"), TimeTakenSeconds: 1}
	if g := applyRubric(sa, true, 10, ""); g.Justification == "" {
		t.Fatal("correct answer needs a justification")
	}
	if g := applyRubric(sa, false, 0, ""); g.Justification == "" {
		t.Fatal("incorrect answer needs a justification")
	}
}

func TestRubricNegativeScoreClamped(t *testing.T) {
	sa := StudentAnswer{QuestionContent: "q", Answer: SingleAnswer("x"), TimeTakenSeconds: 1}
	if g := applyRubric(sa, true, -3, "odd"); g.Score != 0 {
		t.Fatalf("score = %v, want clamped to 0", g.Score)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hello, World!", "hello world"},
		{"  spaced   out  ", "spaced out"},
		{"CAFÉ", "café"},
		{"no-change", "nochange"},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
