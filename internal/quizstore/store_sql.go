package quizstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// SQLStore works against sqlite or postgres through database/sql.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutQuiz(ctx context.Context, q StoredQuiz) (StoredQuiz, error) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.CreatedAt = time.Now().Unix()
	qj, err := json.Marshal(q.Quiz.Questions)
	if err != nil {
		return StoredQuiz{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,questions_json,created_by,created_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		q.ID, q.Quiz.Title, string(qj), q.CreatedBy, q.CreatedAt)
	if err != nil {
		return StoredQuiz{}, err
	}
	return q, nil
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (StoredQuiz, error) {
	q, err := s.GetQuizFull(ctx, id)
	if err != nil {
		return StoredQuiz{}, err
	}
	q.Quiz = stripAnswers(q.Quiz)
	return q, nil
}

func (s *SQLStore) GetQuizFull(ctx context.Context, id string) (StoredQuiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,questions_json,created_by,created_at FROM quizzes WHERE id=$1`, id)
	var q StoredQuiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Quiz.Title, &qjson, &q.CreatedBy, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredQuiz{}, ErrQuizNotFound
		}
		return StoredQuiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Quiz.Questions); err != nil {
		return StoredQuiz{}, err
	}
	return q, nil
}

func (s *SQLStore) PutSubmission(ctx context.Context, sub StoredSubmission) (StoredSubmission, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	sub.SubmittedAt = time.Now().Unix()
	rj, err := json.Marshal(sub.Result)
	if err != nil {
		return StoredSubmission{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO submissions (id,quiz_id,user_id,result_json,final_score,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		sub.ID, sub.QuizID, sub.UserID, string(rj), sub.Result.FinalScore, sub.SubmittedAt)
	if err != nil {
		return StoredSubmission{}, err
	}
	return sub, nil
}

func (s *SQLStore) GetSubmission(ctx context.Context, id string) (StoredSubmission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,quiz_id,user_id,result_json,submitted_at FROM submissions WHERE id=$1`, id)
	var sub StoredSubmission
	var rjson string
	if err := row.Scan(&sub.ID, &sub.QuizID, &sub.UserID, &rjson, &sub.SubmittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredSubmission{}, ErrSubmissionNotFound
		}
		return StoredSubmission{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &sub.Result); err != nil {
		return StoredSubmission{}, err
	}
	return sub, nil
}

var _ Store = (*SQLStore)(nil)
