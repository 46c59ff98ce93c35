package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quizforge/backend/internal/extraction"
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read input from a document file (txt, md, html, rtf, pdf, docx)")
	cmd.Flags().String("url", "", "import input from a URL")
	cmd.Flags().String("text", "", "use the given text directly")
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "json", "output format: json or yaml")
	cmd.Flags().String("output", "", "write output to a file instead of stdout")
}

func inputFlags(cmd *cobra.Command) (file, rawURL, text string, err error) {
	file, _ = cmd.Flags().GetString("file")
	rawURL, _ = cmd.Flags().GetString("url")
	text, _ = cmd.Flags().GetString("text")

	set := 0
	for _, v := range []string{file, rawURL, text} {
		if v != "" {
			set++
		}
	}
	if set > 1 {
		return "", "", "", fmt.Errorf("only one of --file, --url, --text may be given")
	}
	return file, rawURL, text, nil
}

// readText resolves the input text for generation commands. Files and URLs
// go through document extraction; direct text and stdin are passed to the
// pipeline as they are.
func readText(cmd *cobra.Command) (string, error) {
	file, rawURL, text, err := inputFlags(cmd)
	if err != nil {
		return "", err
	}

	switch {
	case text != "":
		return text, nil
	case file != "":
		doc, err := newExtractionService().ExtractFile(file)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	case rawURL != "":
		doc, err := newFetcher().FetchDocument(cmd.Context(), rawURL)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	default:
		return readStdin()
	}
}

// readDocument resolves the input as an extracted document. Direct text and
// stdin are treated as plain text documents.
func readDocument(cmd *cobra.Command) (*extraction.Document, error) {
	file, rawURL, text, err := inputFlags(cmd)
	if err != nil {
		return nil, err
	}

	service := newExtractionService()
	switch {
	case text != "":
		return service.Extract([]byte(text), extraction.FormatTXT)
	case file != "":
		return service.ExtractFile(file)
	case rawURL != "":
		return newFetcher().FetchDocument(cmd.Context(), rawURL)
	default:
		stdin, err := readStdin()
		if err != nil {
			return nil, err
		}
		return service.Extract([]byte(stdin), extraction.FormatTXT)
	}
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no input: provide --file, --url, --text, or pipe text on stdin")
	}
	return string(data), nil
}

// writeOutput encodes v per the command's --format flag and writes it to
// stdout or the --output file.
func writeOutput(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("output")

	var data []byte
	var err error
	switch format {
	case "yaml":
		data, err = yaml.Marshal(v)
	case "json", "":
		data, err = json.MarshalIndent(v, "", "  ")
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if format != "yaml" {
		data = append(data, '\n')
	}

	return writeRaw(path, data)
}

func writeRaw(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
