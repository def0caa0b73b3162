package http

import (
	"encoding/json"
	"net/http"

	"github.com/quizforge/quizforge/internal/adaptive"
	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
)

// POST /adaptive/next
// Thin proxy to the adaptive selector; the selector's difficulty is
// authoritative.
func AdaptiveNextHandler(sel adaptive.Selector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adaptive.NextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.UserID == "" {
			req.UserID = authmw.SubjectFromContext(r.Context())
		}
		next, err := sel.Next(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, next)
	}
}

// POST /difficulty/classify  { "question": "..." }
func ClassifyDifficultyHandler(cl adaptive.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		c, err := cl.Classify(r.Context(), req.Question)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, c)
	}
}
