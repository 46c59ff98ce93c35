package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/evaluation"
	"github.com/quizforge/backend/internal/generation"
)

type generateResult struct {
	ID               string                         `json:"id" yaml:"id"`
	Questions        []generation.GeneratedQuestion `json:"questions" yaml:"questions"`
	TotalGenerated   int                            `json:"total_generated" yaml:"total_generated"`
	GenerationTimeMS int64                          `json:"generation_time_ms" yaml:"generation_time_ms"`
	ModelUsed        string                         `json:"model_used" yaml:"model_used"`
	CreatedAt        time.Time                      `json:"created_at" yaml:"created_at"`
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate quiz questions from text, a document, or a URL",
	Long: `Generate derives quiz questions from the input text. Concepts are
extracted and ranked, then each question is anchored on one concept. Input
comes from --file, --url, --text, or stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd)
		if err != nil {
			return err
		}
		if len(text) < cfg.Generation.MinTextLength {
			return fmt.Errorf("text too short: %d characters (minimum %d)", len(text), cfg.Generation.MinTextLength)
		}

		count, _ := cmd.Flags().GetInt("count")
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		bloom, _ := cmd.Flags().GetString("bloom")
		report, _ := cmd.Flags().GetBool("report")

		types, err := parseQuestionTypes(typeNames)
		if err != nil {
			return err
		}
		if difficulty == "" {
			difficulty = cfg.Generation.DefaultDifficulty
		}
		if err := validateDifficulty(difficulty); err != nil {
			return err
		}

		g := newGenerator()

		start := time.Now()
		questions := g.Generate(cmd.Context(), generation.Request{
			Text:          text,
			NumQuestions:  count,
			QuestionTypes: types,
			Difficulty:    generation.Difficulty(difficulty),
			BloomLevel:    bloom,
		})
		elapsed := time.Since(start)

		if report {
			fmt.Fprintln(os.Stderr, evaluation.Evaluate(questions).String())
		}

		return writeOutput(cmd, generateResult{
			ID:               uuid.New().String(),
			Questions:        questions,
			TotalGenerated:   len(questions),
			GenerationTimeMS: elapsed.Milliseconds(),
			ModelUsed:        modelUsed(),
			CreatedAt:        time.Now().UTC(),
		})
	},
}

func parseQuestionTypes(names []string) ([]generation.QuestionType, error) {
	supported := map[string]generation.QuestionType{
		string(generation.MultipleChoice): generation.MultipleChoice,
		string(generation.TrueFalse):      generation.TrueFalse,
		string(generation.ShortAnswer):    generation.ShortAnswer,
	}

	var types []generation.QuestionType
	for _, name := range names {
		qt, ok := supported[name]
		if !ok {
			return nil, fmt.Errorf("unsupported question type %q", name)
		}
		types = append(types, qt)
	}
	return types, nil
}

func validateDifficulty(difficulty string) error {
	switch generation.Difficulty(difficulty) {
	case generation.Easy, generation.Medium, generation.Hard:
		return nil
	default:
		return fmt.Errorf("unsupported difficulty %q", difficulty)
	}
}

func init() {
	addInputFlags(generateCmd)
	addOutputFlags(generateCmd)
	generateCmd.Flags().Int("count", 5, "number of questions to generate")
	generateCmd.Flags().StringSlice("types", nil, "question types to generate (default: all)")
	generateCmd.Flags().String("difficulty", "", "target difficulty: easy, medium, or hard")
	generateCmd.Flags().String("bloom", "", "Bloom taxonomy level tag for generated questions")
	generateCmd.Flags().Bool("report", false, "print a batch quality report to stderr")

	rootCmd.AddCommand(generateCmd)
}
