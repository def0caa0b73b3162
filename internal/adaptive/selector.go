// Package adaptive holds the contracts for the two external collaborators
// the pipeline treats as opaque: the adaptive next-question selector and the
// question difficulty classifier. The core never interprets their behavior
// beyond these types; the authoritative difficulty is whatever the selector
// returns.
package adaptive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// NextRequest asks the selector for the next question for a user.
// LastWasCorrect is nil on the first question of a session.
type NextRequest struct {
	UserID            string              `json:"userId"`
	CurrentDifficulty pipeline.Difficulty `json:"currentDifficulty"`
	LastWasCorrect    *bool               `json:"lastWasCorrect,omitempty"`
}

// NextQuestion is the selector's choice plus its authoritative difficulty.
type NextQuestion struct {
	ID         string              `json:"id,omitempty"`
	Content    string              `json:"content"`
	Options    []string            `json:"options,omitempty"`
	Difficulty pipeline.Difficulty `json:"difficulty"`
}

type Selector interface {
	Next(ctx context.Context, req NextRequest) (NextQuestion, error)
}

// HTTPSelector proxies to the external adaptive engine.
type HTTPSelector struct {
	base   string
	client *http.Client
}

func NewHTTPSelector(baseURL string, timeout time.Duration) *HTTPSelector {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPSelector{base: baseURL, client: &http.Client{Timeout: timeout}}
}

func (s *HTTPSelector) Next(ctx context.Context, req NextRequest) (NextQuestion, error) {
	var out NextQuestion
	if err := postJSON(ctx, s.client, s.base+"/adaptive/next", req, &out); err != nil {
		return NextQuestion{}, err
	}
	if _, err := pipeline.ParseDifficulty(string(out.Difficulty)); err != nil {
		return NextQuestion{}, pipeline.SchemaViolation(err.Error())
	}
	return out, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", pipeline.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", pipeline.ErrUpstreamUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pipeline.SchemaViolation(err.Error())
	}
	return nil
}
