package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/quizforge/backend/pkg/circuitbreaker"
	"github.com/quizforge/backend/pkg/logger"
	"github.com/quizforge/backend/pkg/retry"
)

// Question is the structured payload the provider must return for one
// multiple-choice question.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
	Topic         string   `json:"topic"`
}

// Provider generates a structured multiple-choice question for a concept
// grounded in the given text. Implementations return an error for any
// failure, including responses that do not match the required shape;
// callers are expected to fall back to a non-provider path.
type Provider interface {
	GenerateQuestion(ctx context.Context, text, concept string) (*Question, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	timeout     time.Duration
	cb          *circuitbreaker.CircuitBreaker
	retryConfig retry.Config
}

const questionSystemPrompt = `You are an educational content expert that writes quiz questions.
Given source text and a concept, write one multiple-choice question grounded in the text.

Rules:
1. The question must be answerable from the text alone
2. Provide exactly 4 answer options with exactly one correct
3. Keep options plausible and mutually exclusive
4. Respond with ONLY a JSON object, no prose, with fields:
   question, options (array of 4 strings), correct_answer, explanation,
   difficulty (easy|medium|hard), topic`

func NewClient(cfg Config) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	cb := circuitbreaker.NewCircuitBreaker("llm", circuitbreaker.Config{
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Logger:           logger.GetLogger(),
	})

	retryConfig := retry.Config{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		ShouldRetry: func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		},
		Logger: logger.GetLogger(),
	}

	logger.Info("LLM client initialized", zap.String("model", cfg.Model))

	return &Client{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		timeout:     timeout,
		cb:          cb,
		retryConfig: retryConfig,
	}
}

// GenerateQuestion asks the provider for one multiple-choice question about
// concept. The response is validated against the question schema before it
// is returned; anything that fails validation comes back as
// ErrInvalidResponse wrapped in the error chain.
func (c *Client) GenerateQuestion(ctx context.Context, text, concept string) (*Question, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	userPrompt := fmt.Sprintf("Text: %s\n\nWrite a multiple-choice question about %q based on the text.",
		truncate(text, 1000), concept)

	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: questionSystemPrompt,
		},
		{
			Role:    openai.ChatMessageRoleUser,
			Content: userPrompt,
		},
	}

	var content string

	err := c.cb.Execute(ctx, func() error {
		return retry.Do(ctx, c.retryConfig, func() error {
			resp, err := c.client.CreateChatCompletion(
				ctx,
				openai.ChatCompletionRequest{
					Model:       c.model,
					Messages:    messages,
					Temperature: c.temperature,
					MaxTokens:   c.maxTokens,
					ResponseFormat: &openai.ChatCompletionResponseFormat{
						Type: openai.ChatCompletionResponseFormatTypeJSONObject,
					},
				},
			)

			if err != nil {
				return fmt.Errorf("failed to create completion: %w", err)
			}

			if len(resp.Choices) == 0 {
				return errors.New("completion returned no choices")
			}

			logger.Debug("Provider completion generated",
				zap.String("concept", concept),
				zap.Int("prompt_tokens", resp.Usage.PromptTokens),
				zap.Int("completion_tokens", resp.Usage.CompletionTokens),
			)

			content = resp.Choices[0].Message.Content

			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	question, err := parseQuestion(content)
	if err != nil {
		return nil, err
	}

	return question, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
