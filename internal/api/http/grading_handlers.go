package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/grading"
	"github.com/quizforge/quizforge/internal/quizstore"
	"github.com/quizforge/quizforge/internal/rbac"
)

type gradeSubmissionReq struct {
	QuizID string `json:"quizId,omitempty"`
	grading.Request
}

// POST /submissions/grade
// A grading failure surfaces as 503; nothing is persisted in that case.
func GradeSubmissionHandler(grader *grading.Grader, store quizstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeSubmissionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		result, err := grader.Grade(r.Context(), req.Request)
		if err != nil {
			writeError(w, err)
			return
		}
		stored, err := store.PutSubmission(r.Context(), quizstore.StoredSubmission{
			QuizID: req.QuizID,
			UserID: authmw.SubjectFromContext(r.Context()),
			Result: result,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stored)
	}
}

// GET /submissions/{submissionID}
// Students see only their own submissions; a foreign id reads as not found
// so ids cannot be probed. submission:view-all roles see everything.
func GetSubmissionHandler(store quizstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "submissionID"))
		if id == "" {
			http.Error(w, "submissionID required", http.StatusBadRequest)
			return
		}
		sub, err := store.GetSubmission(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if sub.UserID != authmw.SubjectFromContext(r.Context()) &&
			!rbac.Allowed(rbac.RoleFromContext(r.Context()), "submission:view-all") {
			writeError(w, quizstore.ErrSubmissionNotFound)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}
