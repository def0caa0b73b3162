// Package grading evaluates a full student submission against reference
// answers, blending correctness, response latency, and the student's
// educational level. There is no local fallback: if the grading capability
// is unavailable the caller gets an explicit error, never a silent zero
// score.
package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizforge/quizforge/internal/genai"
	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/schema"
)

// Model is the slice of the generative capability this package needs.
type Model interface {
	GradeSubmission(ctx context.Context, p genai.GradePrompt) (json.RawMessage, error)
}

type Grader struct {
	model Model
}

func NewGrader(model Model) *Grader {
	return &Grader{model: model}
}

// Grade evaluates every answer in the request, in order. Malformed input is
// rejected before any external call; any capability failure surfaces as
// pipeline.ErrGradingUnavailable.
func (g *Grader) Grade(ctx context.Context, req Request) (SubmissionResult, error) {
	if err := req.validate(); err != nil {
		return SubmissionResult{}, err
	}

	prompt := genai.GradePrompt{
		EducationalLevel: req.EducationalLevel,
		EducationalYear:  req.EducationalYear,
	}
	for _, a := range req.Answers {
		prompt.Answers = append(prompt.Answers, genai.GradeAnswer{
			QuestionID:       a.QuestionID,
			QuestionContent:  a.QuestionContent,
			Answer:           a.Answer.Flatten(),
			CorrectAnswer:    a.CorrectAnswer,
			TimeTakenSeconds: a.TimeTakenSeconds,
		})
	}

	raw, err := g.model.GradeSubmission(ctx, prompt)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %v", pipeline.ErrGradingUnavailable, err)
	}
	result, err := decodeGrades(raw, req.Answers)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %v", pipeline.ErrGradingUnavailable, err)
	}
	return result, nil
}

type wireGrades struct {
	GradedAnswers []wireGradedAnswer `json:"gradedAnswers"`
	FinalScore    float64            `json:"finalScore"`
}

type wireGradedAnswer struct {
	QuestionID    string  `json:"questionId"`
	IsCorrect     bool    `json:"isCorrect"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// decodeGrades validates capability output, matches graded entries back to
// the submitted answers, and applies the local rubric so the numeric policy
// holds exactly. The reported finalScore is recomputed, never trusted.
func decodeGrades(raw json.RawMessage, answers []StudentAnswer) (SubmissionResult, error) {
	if len(raw) == 0 {
		return SubmissionResult{}, pipeline.SchemaViolation("empty payload")
	}
	if err := schema.ValidateWire(schema.GradeResponseSchema, raw); err != nil {
		return SubmissionResult{}, err
	}
	var w wireGrades
	if err := json.Unmarshal(raw, &w); err != nil {
		return SubmissionResult{}, pipeline.SchemaViolation(err.Error())
	}

	byID := make(map[string]wireGradedAnswer, len(w.GradedAnswers))
	for _, ga := range w.GradedAnswers {
		byID[ga.QuestionID] = ga
	}

	result := SubmissionResult{GradedAnswers: make([]GradedAnswer, 0, len(answers))}
	for i, sa := range answers {
		ga, ok := byID[sa.QuestionID]
		if !ok {
			// Positional match covers models that echo blank ids.
			if i < len(w.GradedAnswers) && w.GradedAnswers[i].QuestionID == "" {
				ga = w.GradedAnswers[i]
			} else {
				return SubmissionResult{}, pipeline.SchemaViolation(
					"no graded entry for question " + sa.QuestionID)
			}
		}
		graded := applyRubric(sa, ga.IsCorrect, ga.Score, ga.Justification)
		result.GradedAnswers = append(result.GradedAnswers, graded)
		result.FinalScore += graded.Score
	}
	return result, nil
}
