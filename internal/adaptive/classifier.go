package adaptive

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// Classification labels a question's difficulty with a confidence in [0,1].
type Classification struct {
	Label      pipeline.Difficulty `json:"label"`
	Confidence float64             `json:"confidence"`
}

// Classifier annotates questions post hoc; it takes no part in generation
// or grading control flow.
type Classifier interface {
	Classify(ctx context.Context, questionText string) (Classification, error)
}

// HTTPClassifier proxies to the external difficulty model.
type HTTPClassifier struct {
	base   string
	client *http.Client
}

func NewHTTPClassifier(baseURL string, timeout time.Duration) *HTTPClassifier {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClassifier{base: baseURL, client: &http.Client{Timeout: timeout}}
}

func (c *HTTPClassifier) Classify(ctx context.Context, questionText string) (Classification, error) {
	if strings.TrimSpace(questionText) == "" {
		return Classification{}, pipeline.InvalidRequest("question", "must be a non-empty string")
	}
	in := map[string]string{"question": questionText}
	var out Classification
	if err := postJSON(ctx, c.client, c.base+"/predict-difficulty", in, &out); err != nil {
		return Classification{}, err
	}
	if _, err := pipeline.ParseDifficulty(string(out.Label)); err != nil {
		return Classification{}, pipeline.SchemaViolation(err.Error())
	}
	if out.Confidence < 0 || out.Confidence > 1 {
		return Classification{}, pipeline.SchemaViolation("confidence out of range")
	}
	return out, nil
}
