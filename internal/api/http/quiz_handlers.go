package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/quizstore"
	"github.com/quizforge/quizforge/internal/rbac"
	"github.com/quizforge/quizforge/internal/review"
	"github.com/quizforge/quizforge/internal/schema"
)

var educationalLevels = []string{
	"middle_school", "high_school", "junior_college",
	"diploma", "graduation", "post_graduation",
}

// generateQuizShape validates the wire payload before it becomes a typed
// request: counts coerce from numeric strings, bounds are enforced, and the
// level enum is closed.
var generateQuizShape = schema.Shape{Fields: []schema.Field{
	{Name: "context", Type: schema.TypeString, Required: true},
	{Name: "numMcq", Type: schema.TypeInt, Default: 0, Min: schema.Bound(0), Max: schema.Bound(20)},
	{Name: "numText", Type: schema.TypeInt, Default: 0, Min: schema.Bound(0), Max: schema.Bound(20)},
	{Name: "educationalLevel", Type: schema.TypeString, Enum: educationalLevels},
	{Name: "educationalYear", Type: schema.TypeString},
	{Name: "reviewSession", Type: schema.TypeString},
}}

// POST /quizzes/generate
// When the payload names a reviewSession, generation is gated on every
// extracted concept in that session having been approved or flagged.
func GenerateQuizHandler(gen *quizgen.Generator, reviews *review.Store, store quizstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		coerced, err := generateQuizShape.Apply(body)
		if err != nil {
			writeError(w, err)
			return
		}

		if sess, _ := coerced["reviewSession"].(string); sess != "" {
			done, err := reviews.AllReviewed(sess)
			if err != nil {
				writeError(w, err)
				return
			}
			if !done {
				writeJSON(w, http.StatusConflict,
					map[string]string{"error": "key concepts not fully reviewed"})
				return
			}
		}

		req := quizgen.Request{
			Context: coerced["context"].(string),
			NumMcq:  coerced["numMcq"].(int),
			NumText: coerced["numText"].(int),
		}
		if lvl, _ := coerced["educationalLevel"].(string); lvl != "" {
			req.EducationalLevel = pipeline.EducationalLevel(lvl)
		}
		if yr, _ := coerced["educationalYear"].(string); yr != "" {
			req.EducationalYear = yr
		}

		quiz, err := gen.Generate(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		stored, err := store.PutQuiz(r.Context(), quizstore.StoredQuiz{
			Quiz:      quiz,
			CreatedBy: authmw.SubjectFromContext(r.Context()),
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stored)
	}
}

// GET /quizzes/{quizID}
// Students get the answer-stripped view; quiz:view-full roles get keys.
func GetQuizHandler(store quizstore.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "quizID"))
		if id == "" {
			http.Error(w, "quizID required", http.StatusBadRequest)
			return
		}
		var (
			q   quizstore.StoredQuiz
			err error
		)
		if rbac.Allowed(rbac.RoleFromContext(r.Context()), "quiz:view-full") {
			q, err = store.GetQuizFull(r.Context(), id)
		} else {
			q, err = store.GetQuiz(r.Context(), id)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q)
	}
}
