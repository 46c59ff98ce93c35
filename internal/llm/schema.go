package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidResponse marks provider output that is not valid JSON or does
// not conform to the question schema. Callers match it with errors.Is.
var ErrInvalidResponse = errors.New("invalid provider response")

const questionSchemaURL = "schema://quiz_question.json"

var questionSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required": []any{
		"question", "options", "correct_answer", "explanation", "difficulty", "topic",
	},
	"properties": map[string]any{
		"question": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"options": map[string]any{
			"type":        "array",
			"minItems":    4,
			"maxItems":    4,
			"uniqueItems": true,
			"items": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
		},
		"correct_answer": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"explanation": map[string]any{
			"type": "string",
		},
		"difficulty": map[string]any{
			"type": "string",
			"enum": []any{"easy", "medium", "hard"},
		},
		"topic": map[string]any{
			"type": "string",
		},
	},
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compiledQuestionSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(questionSchemaURL, questionSchema); err != nil {
			schemaErr = fmt.Errorf("failed to add question schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(questionSchemaURL)
	})
	return compiledSchema, schemaErr
}

// parseQuestion decodes and validates one provider response. The schema
// covers field shapes; the correct-answer-in-options rule is checked here
// because it spans fields.
func parseQuestion(content string) (*Question, error) {
	content = strings.TrimSpace(content)

	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	var question Question
	if err := json.Unmarshal([]byte(content), &question); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	found := 0
	for _, option := range question.Options {
		if option == question.CorrectAnswer {
			found++
		}
	}
	if found != 1 {
		return nil, fmt.Errorf("%w: correct answer must appear in options exactly once", ErrInvalidResponse)
	}

	return &question, nil
}
