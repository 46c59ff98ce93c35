package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/generation"
)

type conceptsResult struct {
	ID       string               `json:"id" yaml:"id"`
	Concepts []generation.Concept `json:"concepts" yaml:"concepts"`
	Total    int                  `json:"total" yaml:"total"`
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Extract ranked concepts from text, a document, or a URL",
	Long: `Concepts runs only the extraction stage and prints the ranked concept
candidates the generator would anchor questions on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readText(cmd)
		if err != nil {
			return err
		}
		if len(text) < cfg.Generation.MinConceptLength {
			return fmt.Errorf("text too short: %d characters (minimum %d)", len(text), cfg.Generation.MinConceptLength)
		}

		top, _ := cmd.Flags().GetInt("top")

		concepts := newGenerator().ExtractConcepts(text)
		total := len(concepts)
		if top > 0 && len(concepts) > top {
			concepts = concepts[:top]
		}
		if concepts == nil {
			concepts = []generation.Concept{}
		}

		return writeOutput(cmd, conceptsResult{
			ID:       uuid.New().String(),
			Concepts: concepts,
			Total:    total,
		})
	},
}

func init() {
	addInputFlags(conceptsCmd)
	addOutputFlags(conceptsCmd)
	conceptsCmd.Flags().Int("top", 20, "maximum number of concepts to print")

	rootCmd.AddCommand(conceptsCmd)
}
