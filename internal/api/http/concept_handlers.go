package http

import (
	"encoding/json"
	"net/http"

	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/concepts"
	"github.com/quizforge/quizforge/internal/review"
	"github.com/quizforge/quizforge/internal/schema"
)

var extractShape = schema.Shape{Fields: []schema.Field{
	{Name: "text", Type: schema.TypeString, Required: true},
	{Name: "numConcepts", Type: schema.TypeInt, Default: 0, Min: schema.Bound(0), Max: schema.Bound(20)},
}}

// POST /key-answers
// Extracts key concepts and opens a fresh review session for the caller;
// any previous batch for that session is discarded.
func ExtractKeyAnswersHandler(ex *concepts.Extractor, reviews *review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		coerced, err := extractShape.Apply(body)
		if err != nil {
			writeError(w, err)
			return
		}

		answers, err := ex.Extract(r.Context(), coerced["text"].(string), coerced["numConcepts"].(int))
		if err != nil {
			writeError(w, err)
			return
		}

		session := authmw.SubjectFromContext(r.Context())
		ids := make([]string, len(answers))
		for i, a := range answers {
			ids[i] = a.ID
		}
		reviews.Begin(session, ids)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"keyAnswers":    answers,
			"reviewSession": session,
		})
	}
}
