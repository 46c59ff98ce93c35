package nlp

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Token is a single word with its Penn Treebank part-of-speech tag.
type Token struct {
	Text string
	Tag  string
}

// Entity is a named entity with the recognizer's label.
type Entity struct {
	Text  string
	Label string
}

// Analysis is the result of one full pass over a text.
type Analysis struct {
	Tokens      []Token
	Entities    []Entity
	Sentences   []string
	NounPhrases []string
}

// Analyzer supplies the language analysis the generation pipeline depends
// on. Implementations must be safe for concurrent use.
type Analyzer interface {
	Analyze(text string) (*Analysis, error)
	Sentences(text string) []string
}

type proseAnalyzer struct{}

// NewAnalyzer returns an Analyzer backed by the prose NLP library.
func NewAnalyzer() Analyzer {
	return &proseAnalyzer{}
}

func (a *proseAnalyzer) Analyze(text string) (*Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return &Analysis{}, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze text: %w", err)
	}

	analysis := &Analysis{}
	for _, tok := range doc.Tokens() {
		analysis.Tokens = append(analysis.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	for _, ent := range doc.Entities() {
		analysis.Entities = append(analysis.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	for _, sent := range doc.Sentences() {
		analysis.Sentences = append(analysis.Sentences, sent.Text)
	}
	analysis.NounPhrases = chunkNounPhrases(analysis.Tokens)

	return analysis, nil
}

func (a *proseAnalyzer) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// Option order matters: tagging implies tokenization and extraction
	// implies tagging, so the pipeline stages are switched off outermost
	// first to leave segmentation alone.
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
		prose.WithTokenization(false),
	)
	if err != nil {
		return nil
	}

	sentences := make([]string, 0, len(doc.Sentences()))
	for _, sent := range doc.Sentences() {
		sentences = append(sentences, sent.Text)
	}
	return sentences
}
