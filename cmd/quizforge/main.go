package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/extraction"
	"github.com/quizforge/backend/internal/generation"
	"github.com/quizforge/backend/internal/llm"
	"github.com/quizforge/backend/internal/metrics"
	"github.com/quizforge/backend/internal/nlp"
	"github.com/quizforge/backend/pkg/config"
	"github.com/quizforge/backend/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg     *config.Config
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "quizforge",
	Short: "Generate quiz questions from documents",
	Long: `quizforge turns documents and plain text into structured quiz questions.

Text is analyzed for concepts (entities, noun phrases, keywords); each
concept anchors a multiple-choice, true/false, or short-answer question
with distractors, explanations, and confidence scores. Documents are
extracted from txt, md, html, rtf, pdf, and docx files, or imported from
a URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		if err := logger.Init(level, cfg.Logging.Format, cfg.Logging.OutputPath); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		metrics.Init()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

func newExtractionService() *extraction.Service {
	return extraction.NewService(cfg.Extraction.MaxFileSizeBytes)
}

func newFetcher() *extraction.Fetcher {
	return extraction.NewFetcher(newExtractionService(), time.Duration(cfg.Extraction.FetchTimeoutSec)*time.Second)
}

// newGenerator wires the pipeline. The provider strategy is enabled only
// when an API key is configured; otherwise every question comes from the
// heuristic path.
func newGenerator() *generation.Generator {
	opts := []generation.Option{
		generation.WithMaxQuestions(cfg.Generation.MaxQuestions),
	}

	if cfg.LLM.APIKey != "" {
		client := llm.NewClient(llm.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     time.Duration(cfg.LLM.TimeoutSec) * time.Second,
		})
		opts = append(opts, generation.WithProvider(client))
	}

	return generation.New(nlp.NewAnalyzer(), opts...)
}

func modelUsed() string {
	if cfg.LLM.APIKey != "" {
		return cfg.LLM.Model
	}
	return "heuristic"
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
