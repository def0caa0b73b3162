package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authmw "github.com/quizforge/quizforge/internal/auth/middleware"
	"github.com/quizforge/quizforge/internal/review"
)

// POST /reviews/{conceptID}  { "status": "approved" | "flagged" }
// Re-marking an already-decided concept re-assigns its status.
func MarkReviewHandler(reviews *review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conceptID := strings.TrimSpace(chi.URLParam(r, "conceptID"))
		if conceptID == "" {
			http.Error(w, "conceptID required", http.StatusBadRequest)
			return
		}
		var req struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		session := authmw.SubjectFromContext(r.Context())

		var err error
		switch review.Status(req.Status) {
		case review.StatusApproved:
			err = reviews.MarkApproved(session, conceptID)
		case review.StatusFlagged:
			err = reviews.MarkFlagged(session, conceptID)
		default:
			http.Error(w, "status must be approved or flagged", http.StatusBadRequest)
			return
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeReviewState(w, reviews, session)
	}
}

// GET /reviews
func ReviewStatusHandler(reviews *review.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeReviewState(w, reviews, authmw.SubjectFromContext(r.Context()))
	}
}

func writeReviewState(w http.ResponseWriter, reviews *review.Store, session string) {
	snap, err := reviews.Snapshot(session)
	if err != nil {
		writeError(w, err)
		return
	}
	done, err := reviews.AllReviewed(session)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"statuses":    snap,
		"allReviewed": done,
	})
}
