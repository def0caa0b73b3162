package quizgen

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// FallbackTitle marks a quiz produced in degraded mode so callers can tell
// it apart from model output.
const FallbackTitle = "Untitled Quiz (fallback)"

const (
	fallbackCorrectOption    = "Option A (fallback)"
	fallbackReferenceAnswer  = "Reference answer (fallback)"
	fallbackSnippetRuneLimit = 80
)

var fallbackOptions = []string{
	"Option A (fallback)",
	"Option B (fallback)",
	"Option C (fallback)",
}

// Fallback synthesizes a stub quiz locally when the generative capability is
// unavailable or returned an unusable payload. It is fully deterministic:
// identical input yields byte-identical output.
func Fallback(contextText string, numMcq, numText int) Quiz {
	lines := nonEmptyLines(contextText)
	if len(lines) == 0 {
		lines = []string{strings.TrimSpace(contextText)}
	}

	questions := make([]Question, 0, numMcq+numText)
	for i := 0; i < numMcq; i++ {
		src := lines[i%len(lines)]
		questions = append(questions, Question{
			ID:            fmt.Sprintf("fallback-mcq-%d", i+1),
			Type:          TypeMCQ,
			Content:       fmt.Sprintf("Q%d (fallback): What is the key point of: %q?", i+1, snippet(src)),
			Options:       append([]string(nil), fallbackOptions...),
			CorrectAnswer: fallbackCorrectOption,
			MaxScore:      DefaultMaxScore,
			Difficulty:    pipeline.DifficultyMedium,
		})
	}
	for i := 0; i < numText; i++ {
		src := lines[(numMcq+i)%len(lines)]
		questions = append(questions, Question{
			ID:            fmt.Sprintf("fallback-text-%d", i+1),
			Type:          TypeText,
			Content:       fmt.Sprintf("Q%d (fallback): Briefly explain: %q.", numMcq+i+1, snippet(src)),
			CorrectAnswer: fallbackReferenceAnswer,
			MaxScore:      DefaultMaxScore,
			Difficulty:    pipeline.DifficultyMedium,
		})
	}

	return Quiz{Title: FallbackTitle, Questions: questions}
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= fallbackSnippetRuneLimit {
		return s
	}
	return string(r[:fallbackSnippetRuneLimit]) + "..."
}
