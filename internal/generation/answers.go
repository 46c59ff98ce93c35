package generation

import (
	"fmt"
	"strings"
)

const (
	answerWindowSize     = 10
	minTrailingTokens    = 3
	answerFallbackFormat = "Information about %s from the provided text"
)

// deriveAnswer extracts a short literal span for concept from the first
// qualifying sentence that mentions it. Within a matching sentence the
// concept's position is the first whitespace token containing the concept
// (case-insensitive); the span is the window of up to ten tokens starting
// there, kept only when at least three tokens follow the match. Texts with
// no qualifying span fall back to a fixed phrase, so the result is never
// empty.
func (g *Generator) deriveAnswer(text, concept string) string {
	conceptLower := strings.ToLower(concept)

	for _, sentence := range g.splitSentences(text) {
		if !strings.Contains(strings.ToLower(sentence), conceptLower) {
			continue
		}

		words := strings.Fields(sentence)
		idx := -1
		for i, word := range words {
			if strings.Contains(strings.ToLower(word), conceptLower) {
				idx = i
				break
			}
		}

		if idx >= 0 && idx < len(words)-minTrailingTokens {
			end := idx + answerWindowSize
			if end > len(words) {
				end = len(words)
			}
			return strings.Join(words[idx:end], " ")
		}
	}

	return fmt.Sprintf(answerFallbackFormat, concept)
}

// relevantSentence picks the sentence a multiple-choice question should be
// grounded in: the first sentence mentioning the concept, else the first
// sentence, else the leading slice of the raw text.
func (g *Generator) relevantSentence(text, concept string) string {
	sentences := g.splitSentences(text)
	conceptLower := strings.ToLower(concept)

	for _, sentence := range sentences {
		if strings.Contains(strings.ToLower(sentence), conceptLower) {
			return sentence
		}
	}

	if len(sentences) > 0 {
		return sentences[0]
	}
	return truncate(text, 200)
}

func (g *Generator) splitSentences(text string) []string {
	if g.analyzer == nil {
		return nil
	}
	return g.analyzer.Sentences(text)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
