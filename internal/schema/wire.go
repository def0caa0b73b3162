package schema

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/quizforge/quizforge/internal/pipeline"
)

// JSON Schema documents for generative-model output. The model is prompted
// to return these exact structures; anything that fails here is a
// SchemaViolation and triggers the deterministic fallback (generation,
// extraction) or a hard failure (grading).
const (
	// QuizResponseSchema validates a generated quiz. The id is optional on
	// the wire: the pipeline backfills missing ids.
	QuizResponseSchema = `{
		"type": "object",
		"properties": {
			"title": {"type": "string"},
			"questions": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"id": {"type": "string"},
						"type": {"type": "string", "enum": ["mcq", "text"]},
						"content": {"type": "string", "minLength": 1},
						"options": {"type": "array", "items": {"type": "string"}},
						"correctAnswer": {"type": "string"},
						"maxScore": {"type": "number"},
						"difficulty": {"type": "string"}
					},
					"required": ["type", "content"]
				}
			}
		},
		"required": ["title", "questions"]
	}`

	// KeyAnswersResponseSchema validates extracted key concepts.
	KeyAnswersResponseSchema = `{
		"type": "object",
		"properties": {
			"keyAnswers": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"id": {"type": "string"},
						"topic": {"type": "string", "minLength": 1},
						"explanation": {"type": "string", "minLength": 1},
						"sourceSnippet": {"type": "string"}
					},
					"required": ["topic", "explanation"]
				}
			}
		},
		"required": ["keyAnswers"]
	}`

	// GradeResponseSchema validates a graded submission before the local
	// rubric normalization pass.
	GradeResponseSchema = `{
		"type": "object",
		"properties": {
			"gradedAnswers": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"questionId": {"type": "string"},
						"isCorrect": {"type": "boolean"},
						"score": {"type": "number", "minimum": 0},
						"justification": {"type": "string", "minLength": 1}
					},
					"required": ["questionId", "isCorrect", "score", "justification"]
				}
			},
			"finalScore": {"type": "number"}
		},
		"required": ["gradedAnswers"]
	}`
)

// ValidateWire checks a raw JSON document against a schema constant.
// Failures come back as pipeline.SchemaViolation.
func ValidateWire(schemaJSON string, doc []byte) error {
	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return pipeline.SchemaViolation(err.Error())
	}
	if !res.Valid() {
		detail := "invalid payload"
		if errs := res.Errors(); len(errs) > 0 {
			detail = errs[0].String()
		}
		return pipeline.SchemaViolation(detail)
	}
	return nil
}
