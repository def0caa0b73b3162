// Package quizgen turns source material into a structured quiz through the
// external generative capability, with a deterministic local fallback.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/genai"
	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/schema"
)

// Model is the slice of the generative capability this package needs.
type Model interface {
	GenerateQuiz(ctx context.Context, p genai.QuizPrompt) (json.RawMessage, error)
}

type Generator struct {
	model Model
}

func NewGenerator(model Model) *Generator {
	return &Generator{model: model}
}

// Generate produces a quiz for the request. Caller errors are rejected
// before any external call; capability failures degrade to the deterministic
// fallback and are distinguishable by the fallback title.
func (g *Generator) Generate(ctx context.Context, req Request) (Quiz, error) {
	if err := req.validate(); err != nil {
		return Quiz{}, err
	}

	raw, err := g.model.GenerateQuiz(ctx, genai.QuizPrompt{
		Context:          req.Context,
		NumMcq:           req.NumMcq,
		NumText:          req.NumText,
		EducationalLevel: req.EducationalLevel,
		EducationalYear:  req.EducationalYear,
	})
	if err == nil {
		var quiz Quiz
		quiz, err = decodeQuiz(raw, req)
		if err == nil {
			return quiz, nil
		}
	}
	if pipeline.ShouldFallback(err) {
		log.Printf("quizgen: falling back to local generation: %v", err)
		return Fallback(req.Context, req.NumMcq, req.NumText), nil
	}
	return Quiz{}, err
}

// wire mirrors the capability's response shape before normalization.
type wireQuiz struct {
	Title     string         `json:"title"`
	Questions []wireQuestion `json:"questions"`
}

type wireQuestion struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Content       string   `json:"content"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	MaxScore      float64  `json:"maxScore"`
	Difficulty    string   `json:"difficulty"`
}

// decodeQuiz validates model output, repairs the type split when possible,
// enforces the count and MCQ invariants, and backfills missing ids.
func decodeQuiz(raw json.RawMessage, req Request) (Quiz, error) {
	if len(raw) == 0 {
		return Quiz{}, pipeline.SchemaViolation("empty payload")
	}
	if err := schema.ValidateWire(schema.QuizResponseSchema, raw); err != nil {
		return Quiz{}, err
	}
	var w wireQuiz
	if err := json.Unmarshal(raw, &w); err != nil {
		return Quiz{}, pipeline.SchemaViolation(err.Error())
	}
	if len(w.Questions) == 0 {
		return Quiz{}, pipeline.SchemaViolation("no questions in payload")
	}

	questions := make([]Question, 0, len(w.Questions))
	for _, q := range w.Questions {
		maxScore := q.MaxScore
		if maxScore <= 0 {
			maxScore = DefaultMaxScore
		}
		questions = append(questions, Question{
			ID:            strings.TrimSpace(q.ID),
			Type:          QuestionType(q.Type),
			Content:       strings.TrimSpace(q.Content),
			Options:       q.Options,
			CorrectAnswer: strings.TrimSpace(q.CorrectAnswer),
			MaxScore:      maxScore,
			Difficulty:    pipeline.NormalizeDifficulty(q.Difficulty),
		})
	}

	questions = repairTypeSplit(questions, req.NumMcq, req.NumText)

	var mcq, text int
	for _, q := range questions {
		switch q.Type {
		case TypeMCQ:
			mcq++
		case TypeText:
			text++
		}
	}
	if mcq != req.NumMcq || text != req.NumText {
		return Quiz{}, pipeline.SchemaViolation(fmt.Sprintf(
			"requested %d mcq / %d text, got %d / %d", req.NumMcq, req.NumText, mcq, text))
	}

	seen := make(map[string]struct{}, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.Type == TypeMCQ {
			if len(q.Options) < 3 {
				return Quiz{}, pipeline.SchemaViolation("mcq question with fewer than 3 options")
			}
			if q.CorrectAnswer != "" && !containsString(q.Options, q.CorrectAnswer) {
				return Quiz{}, pipeline.SchemaViolation("mcq correctAnswer not among options")
			}
		}
		// The upstream is not trusted to supply unique ids.
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if _, dup := seen[q.ID]; dup {
			q.ID = uuid.NewString()
		}
		seen[q.ID] = struct{}{}
	}

	return Quiz{Title: w.Title, Questions: questions}, nil
}

// repairTypeSplit handles an upstream that returned the right number of
// questions but the wrong kind split: the last items are re-typed to text
// (options cleared, correctAnswer kept as the reference answer) until the
// requested text count is met. Upstream ordering is otherwise preserved.
func repairTypeSplit(questions []Question, numMcq, numText int) []Question {
	if len(questions) != numMcq+numText {
		return questions
	}
	text := 0
	for _, q := range questions {
		if q.Type == TypeText {
			text++
		}
	}
	if text >= numText {
		return questions
	}
	need := numText - text
	for i := len(questions) - 1; i >= 0 && need > 0; i-- {
		if questions[i].Type != TypeText {
			questions[i].Type = TypeText
			questions[i].Options = nil
			need--
		}
	}
	return questions
}

func containsString(ss []string, s string) bool {
	for _, e := range ss {
		if e == s {
			return true
		}
	}
	return false
}
