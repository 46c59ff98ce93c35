package generation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/llm"
	"github.com/quizforge/backend/internal/metrics"
	"github.com/quizforge/backend/internal/nlp"
	"github.com/quizforge/backend/pkg/logger"
)

var allQuestionTypes = []QuestionType{MultipleChoice, TrueFalse, ShortAnswer}

// randSource is the slice of math/rand the pipeline needs. Injectable so
// tests can pin a seed and assert exact template and shuffle outcomes.
type randSource interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// lockedRand guards a rand.Rand so one Generator can serve concurrent
// callers. The pipeline itself is otherwise stateless per invocation.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.r.Shuffle(n, swap)
}

// Generator derives quiz questions from plain text. Construct once at
// startup and share across requests; invocations are independent and
// side-effect-free apart from the returned batch.
type Generator struct {
	analyzer     nlp.Analyzer
	mc           multipleChoiceStrategy
	rng          randSource
	maxQuestions int
}

// Option configures a Generator.
type Option func(*Generator)

// WithProvider routes multiple-choice generation through an external
// provider, falling back to the heuristic path when a call fails.
func WithProvider(p llm.Provider) Option {
	return func(g *Generator) {
		if p != nil {
			g.mc = providerMultipleChoice{
				provider: p,
				fallback: heuristicMultipleChoice{g},
			}
		}
	}
}

// WithRandSource replaces the default time-seeded randomness.
func WithRandSource(src rand.Source) Option {
	return func(g *Generator) {
		g.rng = &lockedRand{r: rand.New(src)}
	}
}

// WithMaxQuestions caps the per-request question count. Zero means no cap.
func WithMaxQuestions(n int) Option {
	return func(g *Generator) {
		g.maxQuestions = n
	}
}

// New builds a Generator around the given analyzer. A nil analyzer is
// tolerated; extraction then yields no concepts and generation yields no
// questions.
func New(analyzer nlp.Analyzer, opts ...Option) *Generator {
	g := &Generator{
		analyzer: analyzer,
		rng:      &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
	g.mc = heuristicMultipleChoice{g}

	for _, opt := range opts {
		opt(g)
	}

	_, providerBacked := g.mc.(providerMultipleChoice)
	logger.Debug("Question generator initialized",
		zap.Bool("provider_backed", providerBacked),
		zap.Int("max_questions", g.maxQuestions),
	)
	return g
}

// Generate produces up to req.NumQuestions questions from req.Text. The
// result may be shorter when concepts run out of usable material; it is
// empty, never an error, when nothing can be extracted. Per-question
// failures are skipped without compensation. Cancellation is the caller's
// concern; only the provider path observes ctx.
func (g *Generator) Generate(ctx context.Context, req Request) []GeneratedQuestion {
	start := time.Now()
	runID := uuid.New().String()

	num := req.NumQuestions
	if num < 0 {
		num = 0
	}
	if g.maxQuestions > 0 && num > g.maxQuestions {
		num = g.maxQuestions
	}

	types := req.QuestionTypes
	if len(types) == 0 {
		types = allQuestionTypes
	}

	logger.Info("Generating questions",
		zap.String("run_id", runID),
		zap.Int("requested", num),
		zap.Int("text_length", len(req.Text)),
	)

	questions := make([]GeneratedQuestion, 0, num)

	concepts := g.ExtractConcepts(req.Text)
	metrics.ConceptsExtracted.Observe(float64(len(concepts)))
	if len(concepts) == 0 {
		logger.Warn("No concepts extracted", zap.String("run_id", runID))
		metrics.GenerationRequests.WithLabelValues("empty").Inc()
		return questions
	}

	for i := 0; i < num; i++ {
		concept := concepts[i%len(concepts)]
		questionType := types[g.rng.Intn(len(types))]

		var q *GeneratedQuestion
		switch questionType {
		case MultipleChoice:
			q = g.mc.generate(ctx, req.Text, concept.Text)
		case TrueFalse:
			q = g.generateTrueFalse(req.Text, concept.Text)
		case ShortAnswer:
			q = g.generateShortAnswer(req.Text, concept.Text)
		}
		if q == nil {
			continue
		}

		if req.Difficulty != "" && q.QuestionType != TrueFalse {
			q.DifficultyLevel = req.Difficulty
		}
		if req.BloomLevel != "" {
			q.BloomTaxonomyLevel = req.BloomLevel
		}

		metrics.QuestionsGenerated.WithLabelValues(string(q.QuestionType)).Inc()
		metrics.ConfidenceScore.Observe(q.ConfidenceScore)
		questions = append(questions, *q)
	}

	duration := time.Since(start)
	metrics.GenerationDuration.Observe(duration.Seconds())
	metrics.GenerationRequests.WithLabelValues("success").Inc()

	logger.Info("Generation complete",
		zap.String("run_id", runID),
		zap.Int("requested", num),
		zap.Int("produced", len(questions)),
		zap.Duration("duration", duration),
	)
	return questions
}
