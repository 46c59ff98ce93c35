package generation

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/llm"
	"github.com/quizforge/backend/internal/metrics"
	"github.com/quizforge/backend/pkg/logger"
)

var multipleChoiceTemplates = []string{
	"What is %s?",
	"Which of the following best describes %s?",
	"What is the main characteristic of %s?",
	"How is %s defined?",
}

var shortAnswerTemplates = []string{
	"Define %s.",
	"Explain what %s means.",
	"Describe %s.",
	"What is the purpose of %s?",
	"How does %s work?",
}

// multipleChoiceStrategy is chosen once when the Generator is built: the
// heuristic path, or the provider path with the heuristic as fallback.
// A nil result means the question could not be generated for this concept.
type multipleChoiceStrategy interface {
	generate(ctx context.Context, text, concept string) *GeneratedQuestion
}

type heuristicMultipleChoice struct {
	g *Generator
}

func (s heuristicMultipleChoice) generate(_ context.Context, text, concept string) *GeneratedQuestion {
	g := s.g

	sentence := g.relevantSentence(text, concept)
	questionText := fmt.Sprintf(multipleChoiceTemplates[g.rng.Intn(len(multipleChoiceTemplates))], concept)
	correct := g.deriveAnswer(sentence, concept)

	options := append([]string{correct}, generateDistractors(concept, correct)...)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &GeneratedQuestion{
		QuestionText:    questionText,
		QuestionType:    MultipleChoice,
		Options:         options,
		CorrectAnswer:   correct,
		Explanation:     fmt.Sprintf("Based on the text: %s...", truncate(sentence, 100)),
		DifficultyLevel: Medium,
		Topic:           concept,
		Keywords:        []string{concept},
		ConfidenceScore: 0.6,
		SourceSentence:  sentence,
	}
}

type providerMultipleChoice struct {
	provider llm.Provider
	fallback heuristicMultipleChoice
}

func (s providerMultipleChoice) generate(ctx context.Context, text, concept string) *GeneratedQuestion {
	payload, err := s.provider.GenerateQuestion(ctx, text, concept)
	if err != nil {
		logger.Warn("Provider generation failed, using heuristic",
			zap.String("concept", concept),
			zap.Error(err),
		)
		metrics.ProviderFallbacks.Inc()
		return s.fallback.generate(ctx, text, concept)
	}

	topic := payload.Topic
	if topic == "" {
		topic = concept
	}

	return &GeneratedQuestion{
		QuestionText:    payload.Question,
		QuestionType:    MultipleChoice,
		Options:         payload.Options,
		CorrectAnswer:   payload.CorrectAnswer,
		Explanation:     payload.Explanation,
		DifficultyLevel: Difficulty(payload.Difficulty),
		Topic:           topic,
		Keywords:        []string{concept},
		ConfidenceScore: 0.8,
		SourceSentence:  truncate(text, 200),
	}
}

// generateTrueFalse builds a statement question from one randomly chosen
// sentence mentioning the concept. True/false questions are always labeled
// easy and keep that label through the orchestrator.
func (g *Generator) generateTrueFalse(text, concept string) *GeneratedQuestion {
	conceptLower := strings.ToLower(concept)

	var matches []string
	for _, sentence := range g.splitSentences(text) {
		if strings.Contains(strings.ToLower(sentence), conceptLower) {
			matches = append(matches, sentence)
		}
	}
	if len(matches) == 0 {
		return nil
	}

	sentence := matches[g.rng.Intn(len(matches))]

	var statement, answer, explanation string
	if g.rng.Intn(2) == 0 {
		statement = strings.TrimSuffix(strings.TrimSpace(sentence), ".")
		answer = "true"
		explanation = "This statement is true based on the provided text."
	} else {
		statement = negate(sentence)
		answer = "false"
		explanation = fmt.Sprintf("This statement is false. The correct information is: %s", sentence)
	}

	return &GeneratedQuestion{
		QuestionText:    statement,
		QuestionType:    TrueFalse,
		CorrectAnswer:   answer,
		Explanation:     explanation,
		DifficultyLevel: Easy,
		Topic:           concept,
		Keywords:        []string{concept},
		ConfidenceScore: 0.7,
		SourceSentence:  sentence,
	}
}

func (g *Generator) generateShortAnswer(text, concept string) *GeneratedQuestion {
	questionText := fmt.Sprintf(shortAnswerTemplates[g.rng.Intn(len(shortAnswerTemplates))], concept)
	answer := g.deriveAnswer(text, concept)

	return &GeneratedQuestion{
		QuestionText:    questionText,
		QuestionType:    ShortAnswer,
		CorrectAnswer:   answer,
		Explanation:     fmt.Sprintf("Key points should include information about %s", concept),
		DifficultyLevel: Medium,
		Topic:           concept,
		Keywords:        []string{concept},
		ConfidenceScore: 0.5,
		SourceSentence:  truncate(text, 200),
	}
}
