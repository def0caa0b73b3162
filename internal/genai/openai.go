package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/quizforge/quizforge/internal/pipeline"
	"github.com/quizforge/quizforge/internal/schema"
)

// Client talks to an OpenAI-compatible model using forced tool calls so the
// response arrives as JSON matching the declared schema.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	if model == "" {
		model = openai.GPT4o
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{client: openai.NewClient(apiKey), model: model, timeout: timeout}
}

const systemPrompt = "You are a precise educational content engine. Always respond by calling the provided tool with arguments that strictly follow its JSON schema."

// call performs one chat completion with a forced tool call, retrying once
// on transport failure before reporting the upstream as unavailable.
func (c *Client) call(ctx context.Context, prompt, fnName, fnDesc, fnSchema string) (json.RawMessage, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Tools: []openai.Tool{{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        fnName,
				Description: fnDesc,
				Parameters:  json.RawMessage(fnSchema),
			},
		}},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: fnName},
		},
	}

	var resp openai.ChatCompletionResponse
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		resp, err = c.client.CreateChatCompletion(callCtx, req)
		cancel()
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("genai: %s attempt %d failed: %v", fnName, attempt+1, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pipeline.ErrUpstreamUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, pipeline.SchemaViolation("no choices in completion")
	}
	calls := resp.Choices[0].Message.ToolCalls
	if len(calls) == 0 {
		return nil, pipeline.SchemaViolation("no tool call in completion")
	}
	if calls[0].Function.Name != fnName {
		return nil, pipeline.SchemaViolation("unexpected tool call " + calls[0].Function.Name)
	}
	return json.RawMessage(calls[0].Function.Arguments), nil
}

// GenerateQuiz returns raw quiz JSON; the caller validates and decodes it.
func (c *Client) GenerateQuiz(ctx context.Context, p QuizPrompt) (json.RawMessage, error) {
	return c.call(ctx, buildQuizPrompt(p),
		"submit_quiz", "Submit the generated quiz", schema.QuizResponseSchema)
}

// ExtractKeyAnswers returns raw key-concept JSON.
func (c *Client) ExtractKeyAnswers(ctx context.Context, p ExtractPrompt) (json.RawMessage, error) {
	return c.call(ctx, buildExtractPrompt(p),
		"submit_key_answers", "Submit the extracted key concepts", schema.KeyAnswersResponseSchema)
}

// GradeSubmission returns raw graded-submission JSON.
func (c *Client) GradeSubmission(ctx context.Context, p GradePrompt) (json.RawMessage, error) {
	return c.call(ctx, buildGradePrompt(p),
		"submit_grades", "Submit the graded submission", schema.GradeResponseSchema)
}
