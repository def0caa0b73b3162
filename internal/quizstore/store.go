// Package quizstore persists generated quizzes and graded submissions.
// Records are written only after their producing stage has fully validated
// its output, so an abandoned request never leaves a partial write.
package quizstore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quizgen"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// StoredQuiz is a persisted quiz with ownership metadata.
type StoredQuiz struct {
	ID        string       `json:"id"`
	Quiz      quizgen.Quiz `json:"quiz"`
	CreatedBy string       `json:"created_by"`
	CreatedAt int64        `json:"created_at"`
}

// StoredSubmission is a graded submission tied to a quiz and student.
type StoredSubmission struct {
	ID          string                   `json:"id"`
	QuizID      string                   `json:"quiz_id"`
	UserID      string                   `json:"user_id"`
	Result      grading.SubmissionResult `json:"result"`
	SubmittedAt int64                    `json:"submitted_at"`
}

type Store interface {
	PutQuiz(ctx context.Context, q StoredQuiz) (StoredQuiz, error)
	// GetQuiz is student-safe: correct answers are stripped.
	GetQuiz(ctx context.Context, id string) (StoredQuiz, error)
	// GetQuizFull returns the quiz with answer keys, for instructors and grading.
	GetQuizFull(ctx context.Context, id string) (StoredQuiz, error)
	PutSubmission(ctx context.Context, s StoredSubmission) (StoredSubmission, error)
	GetSubmission(ctx context.Context, id string) (StoredSubmission, error)
}

// stripAnswers removes reference answers before serving a quiz to students.
func stripAnswers(q quizgen.Quiz) quizgen.Quiz {
	out := q
	out.Questions = make([]quizgen.Question, len(q.Questions))
	copy(out.Questions, q.Questions)
	for i := range out.Questions {
		out.Questions[i].CorrectAnswer = ""
	}
	return out
}

// memoryStore backs tests and offline runs.
type memoryStore struct {
	mu          sync.RWMutex
	quizzes     map[string]StoredQuiz
	submissions map[string]StoredSubmission
}

func NewInMemoryStore() Store {
	return &memoryStore{
		quizzes:     map[string]StoredQuiz{},
		submissions: map[string]StoredSubmission{},
	}
}

func (m *memoryStore) PutQuiz(_ context.Context, q StoredQuiz) (StoredQuiz, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.CreatedAt = time.Now().Unix()
	m.mu.Lock()
	m.quizzes[q.ID] = q
	m.mu.Unlock()
	return q, nil
}

func (m *memoryStore) GetQuiz(ctx context.Context, id string) (StoredQuiz, error) {
	q, err := m.GetQuizFull(ctx, id)
	if err != nil {
		return StoredQuiz{}, err
	}
	q.Quiz = stripAnswers(q.Quiz)
	return q, nil
}

func (m *memoryStore) GetQuizFull(_ context.Context, id string) (StoredQuiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return StoredQuiz{}, ErrQuizNotFound
	}
	return q, nil
}

func (m *memoryStore) PutSubmission(_ context.Context, s StoredSubmission) (StoredSubmission, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.SubmittedAt = time.Now().Unix()
	m.mu.Lock()
	m.submissions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

func (m *memoryStore) GetSubmission(_ context.Context, id string) (StoredSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.submissions[id]
	if !ok {
		return StoredSubmission{}, ErrSubmissionNotFound
	}
	return s, nil
}
