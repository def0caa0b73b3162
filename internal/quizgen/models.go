package quizgen

import (
	"strings"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// QuestionType is the closed question-kind set.
type QuestionType string

const (
	TypeMCQ  QuestionType = "mcq"
	TypeText QuestionType = "text"
)

// DefaultMaxScore applies when the upstream omits maxScore.
const DefaultMaxScore = 10

type Question struct {
	ID            string              `json:"id"`
	Type          QuestionType        `json:"type"`
	Content       string              `json:"content"`
	Options       []string            `json:"options,omitempty"` // mcq only
	CorrectAnswer string              `json:"correctAnswer,omitempty"`
	MaxScore      float64             `json:"maxScore"`
	Difficulty    pipeline.Difficulty `json:"difficulty,omitempty"`
}

type Quiz struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Request carries the caller's generation parameters. Counts are bounded to
// [0,20] each and must sum to at least one.
type Request struct {
	Context          string                    `json:"context"`
	NumMcq           int                       `json:"numMcq"`
	NumText          int                       `json:"numText"`
	EducationalLevel pipeline.EducationalLevel `json:"educationalLevel,omitempty"`
	EducationalYear  string                    `json:"educationalYear,omitempty"`
}

const (
	MinQuestions = 0
	MaxQuestions = 20
)

func (r Request) validate() error {
	if strings.TrimSpace(r.Context) == "" {
		return pipeline.InvalidRequest("context", "must be a non-empty string")
	}
	if r.NumMcq < MinQuestions || r.NumMcq > MaxQuestions {
		return pipeline.InvalidRequest("numMcq", "must be between 0 and 20")
	}
	if r.NumText < MinQuestions || r.NumText > MaxQuestions {
		return pipeline.InvalidRequest("numText", "must be between 0 and 20")
	}
	if r.NumMcq+r.NumText <= 0 {
		return pipeline.InvalidRequest("", "at least one question must be requested")
	}
	if r.EducationalLevel != "" {
		if _, err := pipeline.ParseEducationalLevel(string(r.EducationalLevel)); err != nil {
			return pipeline.InvalidRequest("educationalLevel", err.Error())
		}
	}
	return nil
}
