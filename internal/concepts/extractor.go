// Package concepts derives reviewable key concepts from raw source material.
package concepts

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/quizforge/quizforge/internal/genai"
	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/schema"
)

// MaxInputRunes bounds the request size sent upstream.
const MaxInputRunes = 8000

// DefaultNumConcepts is requested when the caller does not say how many.
const DefaultNumConcepts = 5

// KeyAnswer is one extracted concept awaiting human review.
type KeyAnswer struct {
	ID            string `json:"id"`
	Topic         string `json:"topic"`
	Explanation   string `json:"explanation"`
	SourceSnippet string `json:"sourceSnippet,omitempty"`
}

// Model is the slice of the generative capability this package needs.
type Model interface {
	ExtractKeyAnswers(ctx context.Context, p genai.ExtractPrompt) (json.RawMessage, error)
}

type Extractor struct {
	model Model
}

func NewExtractor(model Model) *Extractor {
	return &Extractor{model: model}
}

// Extract returns an ordered list of key concepts for text. Capability
// failures and empty results degrade to the deterministic sentence fallback.
func (e *Extractor) Extract(ctx context.Context, text string, numConcepts int) ([]KeyAnswer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, pipeline.InvalidRequest("text", "must be a non-empty string")
	}
	text = truncateRunes(text, MaxInputRunes)
	if numConcepts <= 0 {
		numConcepts = DefaultNumConcepts
	}

	raw, err := e.model.ExtractKeyAnswers(ctx, genai.ExtractPrompt{Text: text, NumConcepts: numConcepts})
	if err == nil {
		var answers []KeyAnswer
		answers, err = decodeKeyAnswers(raw)
		if err == nil {
			return answers, nil
		}
	}
	if pipeline.ShouldFallback(err) {
		log.Printf("concepts: falling back to local extraction: %v", err)
		return Fallback(text), nil
	}
	return nil, err
}

type wireKeyAnswers struct {
	KeyAnswers []KeyAnswer `json:"keyAnswers"`
}

func decodeKeyAnswers(raw json.RawMessage) ([]KeyAnswer, error) {
	if len(raw) == 0 {
		return nil, pipeline.SchemaViolation("empty payload")
	}
	if err := schema.ValidateWire(schema.KeyAnswersResponseSchema, raw); err != nil {
		return nil, err
	}
	var w wireKeyAnswers
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, pipeline.SchemaViolation(err.Error())
	}
	if len(w.KeyAnswers) == 0 {
		return nil, pipeline.SchemaViolation("zero concepts in payload")
	}
	seen := make(map[string]struct{}, len(w.KeyAnswers))
	for i := range w.KeyAnswers {
		ka := &w.KeyAnswers[i]
		ka.Topic = strings.TrimSpace(ka.Topic)
		ka.Explanation = strings.TrimSpace(ka.Explanation)
		if ka.ID == "" {
			ka.ID = uuid.NewString()
		}
		if _, dup := seen[ka.ID]; dup {
			ka.ID = uuid.NewString()
		}
		seen[ka.ID] = struct{}{}
	}
	return w.KeyAnswers, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
