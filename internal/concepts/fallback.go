package concepts

import (
	"fmt"
	"strings"
)

const (
	maxFallbackConcepts = 5
	minSentenceLength   = 20
	topicPrefixLength   = 50
)

// Fallback derives up to five concepts from the first qualifying sentences
// of text. Deterministic: identical input yields byte-identical output.
func Fallback(text string) []KeyAnswer {
	var answers []KeyAnswer
	for i, sentence := range qualifyingSentences(text) {
		if i == maxFallbackConcepts {
			break
		}
		answers = append(answers, KeyAnswer{
			ID:            fmt.Sprintf("fallback-%d", i+1),
			Topic:         topicOf(sentence),
			Explanation:   sentence,
			SourceSnippet: sentence,
		})
	}
	if len(answers) == 0 {
		answers = append(answers, KeyAnswer{
			ID:            "fallback-1",
			Topic:         "Key Concept",
			Explanation:   "Review the uploaded material to understand the main concepts.",
			SourceSnippet: truncateRunes(text, 200),
		})
	}
	return answers
}

// qualifyingSentences splits text on sentence punctuation and keeps the
// sentences longer than the minimum length, in order.
func qualifyingSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	var out []string
	for _, p := range parts {
		if s := strings.TrimSpace(p); len(s) > minSentenceLength {
			out = append(out, s)
		}
	}
	return out
}

func topicOf(sentence string) string {
	r := []rune(sentence)
	if len(r) <= topicPrefixLength {
		return sentence
	}
	return string(r[:topicPrefixLength]) + "..."
}
