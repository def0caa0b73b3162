// Package genai wraps the external generative capability behind a narrow
// request/response surface so pipeline stages can be unit-tested against
// fakes and the deterministic fallbacks never touch a live model.
package genai

import (
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// QuizPrompt asks for exactly NumMcq MCQ and NumText text questions grounded
// only in Context.
type QuizPrompt struct {
	Context          string
	NumMcq           int
	NumText          int
	EducationalLevel pipeline.EducationalLevel
	EducationalYear  string
}

// ExtractPrompt asks for key concepts derived from Text.
type ExtractPrompt struct {
	Text        string
	NumConcepts int
}

// GradeAnswer is one student answer rendered for the grading prompt.
type GradeAnswer struct {
	QuestionID       string
	QuestionContent  string
	Answer           string
	CorrectAnswer    string
	TimeTakenSeconds float64
}

// GradePrompt asks for a per-answer evaluation of a full submission.
type GradePrompt struct {
	Answers          []GradeAnswer
	EducationalLevel pipeline.EducationalLevel
	EducationalYear  string
}

// levelGuidance renders the expectation-bar guidance for a target level.
// The level modulates what counts as a full-credit answer, never the score
// bounds themselves.
func levelGuidance(level pipeline.EducationalLevel, year string) string {
	if level == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("### EDUCATIONAL LEVEL ###\n")
	sb.WriteString("Target audience: ")
	sb.WriteString(string(level))
	if year != "" {
		sb.WriteString(" (year/grade: " + year + ")")
	}
	sb.WriteString("\n")
	switch level {
	case pipeline.LevelMiddleSchool:
		sb.WriteString("Use simple vocabulary and short, concrete phrasing. Accept basic understanding; do not require technical terminology.\n")
	case pipeline.LevelHighSchool:
		sb.WriteString("Moderate complexity; introduce subject terminology and some analytical thinking.\n")
	case pipeline.LevelJuniorCollege:
		sb.WriteString("Bridge toward college-level thinking with application-based content and moderate analytical depth.\n")
	case pipeline.LevelDiploma:
		sb.WriteString("Practical, application-oriented content focused on real-world and technical scenarios.\n")
	case pipeline.LevelGraduation:
		sb.WriteString("Require critical thinking, conceptual depth, and synthesis of ideas with proper academic terminology.\n")
	case pipeline.LevelPostGraduation:
		sb.WriteString("Expert academic level: sophisticated analysis, research-level thinking, minimal tolerance for superficial answers.\n")
	}
	sb.WriteString("### END EDUCATIONAL LEVEL ###\n")
	return sb.String()
}

func buildQuizPrompt(p QuizPrompt) string {
	var sb strings.Builder
	sb.WriteString("You are an expert quiz author. Generate a quiz based ONLY on the context provided below. ")
	sb.WriteString("Do not use any outside knowledge: questions must be derived from the content, not about it.\n\n")
	fmt.Fprintf(&sb, "Generate exactly %d MCQ questions and %d text questions.\n", p.NumMcq, p.NumText)
	sb.WriteString("For every question include a unique 'id' and a 'difficulty' (easy, medium, or hard).\n")
	sb.WriteString("For each MCQ provide 4 distinct options and suggest one of them as 'correctAnswer' (a suggestion for the human instructor to approve).\n")
	sb.WriteString("For each text question provide a concise reference answer in 'correctAnswer' for the instructor to grade against.\n")
	sb.WriteString("Also produce a suitable quiz 'title' based on the context.\n\n")
	if g := levelGuidance(p.EducationalLevel, p.EducationalYear); g != "" {
		sb.WriteString(g)
		sb.WriteString("\n")
	}
	sb.WriteString("### CONTEXT ###\n")
	sb.WriteString(p.Context)
	sb.WriteString("\n### END CONTEXT ###\n")
	return sb.String()
}

func buildExtractPrompt(p ExtractPrompt) string {
	n := p.NumConcepts
	if n <= 0 {
		n = 5
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Extract up to %d key concepts from the content below. ", n)
	sb.WriteString("For each concept provide a clear 'topic' heading, a concise 2-3 sentence 'explanation', and where possible a 'sourceSnippet' quoted from the content.\n\n")
	sb.WriteString("### CONTENT ###\n")
	sb.WriteString(p.Text)
	sb.WriteString("\n### END CONTENT ###\n")
	return sb.String()
}

func buildGradePrompt(p GradePrompt) string {
	var sb strings.Builder
	sb.WriteString("You are an expert grading assistant. Evaluate each answer in the student submission below.\n\n")
	sb.WriteString("Scoring is out of 10 per question and must factor in accuracy and time taken:\n")
	sb.WriteString("- A correct answer with a quick response earns 10.\n")
	sb.WriteString("- A correct but very slow answer earns slightly less (8 or 9).\n")
	sb.WriteString("- An incorrect answer must earn exactly 0.\n")
	sb.WriteString("- For text questions, award partial credit for how well the answer matches the reference and whether its depth fits the student's level.\n\n")
	sb.WriteString("Every graded answer needs a non-empty 'justification' phrased for the student's level: encouraging and simple for younger students, direct and academic for advanced ones.\n\n")
	if g := levelGuidance(p.EducationalLevel, p.EducationalYear); g != "" {
		sb.WriteString(g)
		sb.WriteString("\n")
	}
	sb.WriteString("### STUDENT SUBMISSION ###\n")
	for _, a := range p.Answers {
		sb.WriteString("---\n")
		fmt.Fprintf(&sb, "Question ID: %s\n", a.QuestionID)
		fmt.Fprintf(&sb, "Question: %s\n", a.QuestionContent)
		fmt.Fprintf(&sb, "Student Answer: %s\n", a.Answer)
		if a.CorrectAnswer != "" {
			fmt.Fprintf(&sb, "Reference Answer: %s\n", a.CorrectAnswer)
		}
		fmt.Fprintf(&sb, "Time Taken: %.0f seconds\n", a.TimeTakenSeconds)
	}
	sb.WriteString("---\n### END SUBMISSION ###\n")
	sb.WriteString("\nReturn a graded entry for every question, plus 'finalScore' as the sum of all scores.\n")
	return sb.String()
}
