package quizstore

import (
	"context"
	"errors"
	"testing"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quizgen"
)

func sampleQuiz() quizgen.Quiz {
	return quizgen.Quiz{
		Title: "Cells",
		Questions: []quizgen.Question{
			{
				ID:            "q1",
				Type:          quizgen.TypeMCQ,
				Content:       "What organelle produces ATP?",
				Options:       []string{"Mitochondria", "Ribosome", "Nucleus"},
				CorrectAnswer: "Mitochondria",
				MaxScore:      10,
			},
			{
				ID:            "q2",
				Type:          quizgen.TypeText,
				Content:       "Explain osmosis.",
				CorrectAnswer: "Diffusion of water across a membrane.",
				MaxScore:      10,
			},
		},
	}
}

func TestMemoryStoreQuizRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	stored, err := s.PutQuiz(ctx, StoredQuiz{Quiz: sampleQuiz(), CreatedBy: "inst-1"})
	if err != nil {
		t.Fatalf("PutQuiz: %v", err)
	}
	if stored.ID == "" || stored.CreatedAt == 0 {
		t.Fatalf("metadata not filled: %+v", stored)
	}

	full, err := s.GetQuizFull(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetQuizFull: %v", err)
	}
	if full.Quiz.Questions[0].CorrectAnswer != "Mitochondria" {
		t.Fatal("full view lost the answer key")
	}

	// Student view strips every answer but keeps the options.
	safe, err := s.GetQuiz(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetQuiz: %v", err)
	}
	for i, q := range safe.Quiz.Questions {
		if q.CorrectAnswer != "" {
			t.Fatalf("question %d leaked its answer", i)
		}
	}
	if len(safe.Quiz.Questions[0].Options) != 3 {
		t.Fatal("options stripped from student view")
	}

	// Stripping must not write back into the stored record.
	again, _ := s.GetQuizFull(ctx, stored.ID)
	if again.Quiz.Questions[0].CorrectAnswer == "" {
		t.Fatal("student view mutated the stored quiz")
	}
}

func TestMemoryStoreQuizNotFound(t *testing.T) {
	s := NewInMemoryStore()
	if _, err := s.GetQuiz(context.Background(), "nope"); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestMemoryStoreSubmissionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	result := grading.SubmissionResult{
		GradedAnswers: []grading.GradedAnswer{{
			StudentAnswer: grading.StudentAnswer{
				QuestionID:      "q1",
				QuestionContent: "What organelle produces ATP?",
				Answer:          grading.SingleAnswer("Mitochondria"),
			},
			IsCorrect:     true,
			Score:         10,
			Justification: "Correct.",
		}},
		FinalScore: 10,
	}
	stored, err := s.PutSubmission(ctx, StoredSubmission{QuizID: "quiz-1", UserID: "stu-1", Result: result})
	if err != nil {
		t.Fatalf("PutSubmission: %v", err)
	}
	if stored.ID == "" || stored.SubmittedAt == 0 {
		t.Fatalf("metadata not filled: %+v", stored)
	}

	got, err := s.GetSubmission(ctx, stored.ID)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got.Result.FinalScore != 10 || got.UserID != "stu-1" {
		t.Fatalf("got %+v", got)
	}

	if _, err := s.GetSubmission(ctx, "nope"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("err = %v, want ErrSubmissionNotFound", err)
	}
}
