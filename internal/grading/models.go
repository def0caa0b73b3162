package grading

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// Answer holds a student response: a single string or an ordered selection
// of strings (multi-select MCQ). The JSON form is either kind.
type Answer struct {
	values []string
	multi  bool
}

func SingleAnswer(s string) Answer { return Answer{values: []string{s}} }

func MultiAnswer(ss []string) Answer {
	return Answer{values: append([]string(nil), ss...), multi: true}
}

func (a Answer) IsEmpty() bool {
	if a.multi {
		return len(a.values) == 0
	}
	return len(a.values) == 0 || strings.TrimSpace(a.values[0]) == ""
}

// Flatten renders the answer as one string for prompts and comparisons.
func (a Answer) Flatten() string {
	return strings.Join(a.values, ", ")
}

func (a Answer) Values() []string { return append([]string(nil), a.values...) }

func (a *Answer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = SingleAnswer(s)
		return nil
	}
	var ss []string
	if err := json.Unmarshal(b, &ss); err == nil {
		*a = MultiAnswer(ss)
		return nil
	}
	return fmt.Errorf("answer must be a string or an array of strings")
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		return json.Marshal(a.values)
	}
	if len(a.values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(a.values[0])
}

// StudentAnswer is one answered question within a submission.
type StudentAnswer struct {
	QuestionID       string  `json:"questionId"`
	QuestionContent  string  `json:"questionContent"`
	Answer           Answer  `json:"answer"`
	CorrectAnswer    string  `json:"correctAnswer,omitempty"`
	TimeTakenSeconds float64 `json:"timeTakenSeconds"`
}

// GradedAnswer extends StudentAnswer with the rubric outcome.
type GradedAnswer struct {
	StudentAnswer
	IsCorrect     bool    `json:"isCorrect"`
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
}

// SubmissionResult is the graded submission; FinalScore is the exact sum of
// per-question scores.
type SubmissionResult struct {
	GradedAnswers []GradedAnswer `json:"gradedAnswers"`
	FinalScore    float64        `json:"finalScore"`
}

// Request carries a full submission to grade.
type Request struct {
	Answers          []StudentAnswer           `json:"answers"`
	EducationalLevel pipeline.EducationalLevel `json:"educationalLevel,omitempty"`
	EducationalYear  string                    `json:"educationalYear,omitempty"`
}

func (r Request) validate() error {
	if len(r.Answers) == 0 {
		return pipeline.InvalidRequest("answers", "must contain at least one answer")
	}
	for i, a := range r.Answers {
		if strings.TrimSpace(a.QuestionContent) == "" {
			return pipeline.InvalidRequest(fmt.Sprintf("answers[%d].questionContent", i), "required")
		}
		if a.Answer.IsEmpty() {
			return pipeline.InvalidRequest(fmt.Sprintf("answers[%d].answer", i), "required")
		}
		if a.TimeTakenSeconds < 0 {
			return pipeline.InvalidRequest(fmt.Sprintf("answers[%d].timeTakenSeconds", i), "must be >= 0")
		}
	}
	if r.EducationalLevel != "" {
		if _, err := pipeline.ParseEducationalLevel(string(r.EducationalLevel)); err != nil {
			return pipeline.InvalidRequest("educationalLevel", err.Error())
		}
	}
	return nil
}
