package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/quizstore"
	"github.com/quizforge/quizforge/internal/review"
	"github.com/quizforge/quizforge/internal/schema"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the pipeline error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var ve *schema.ValidationError
	switch {
	case pipeline.IsInvalidRequest(err), errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, pipeline.ErrGradingUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case errors.Is(err, pipeline.ErrUpstreamUnavailable):
		// Reaches here only from the proxied collaborators; generation and
		// extraction degrade to their fallbacks instead.
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	case errors.Is(err, quizstore.ErrQuizNotFound),
		errors.Is(err, quizstore.ErrSubmissionNotFound),
		errors.Is(err, review.ErrNoSession),
		errors.Is(err, review.ErrUnknownConcept):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
