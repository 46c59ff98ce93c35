package main

import (
	"github.com/spf13/cobra"

	"github.com/quizforge/backend/internal/extraction"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract cleaned text from a document or URL",
	Long: `Extract runs document extraction alone: parse the input, strip markup,
normalize whitespace, and print the cleaned text. With --meta the document
metadata (format, counts, content hash, summary) is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd)
		if err != nil {
			return err
		}

		meta, _ := cmd.Flags().GetBool("meta")
		if meta {
			return writeOutput(cmd, struct {
				Summary  string              `json:"summary" yaml:"summary"`
				Metadata extraction.Metadata `json:"metadata" yaml:"metadata"`
			}{
				Summary:  doc.Summary,
				Metadata: doc.Metadata,
			})
		}

		path, _ := cmd.Flags().GetString("output")
		return writeRaw(path, []byte(doc.Text+"\n"))
	},
}

func init() {
	addInputFlags(extractCmd)
	addOutputFlags(extractCmd)
	extractCmd.Flags().Bool("meta", false, "print document metadata instead of the text")

	rootCmd.AddCommand(extractCmd)
}
